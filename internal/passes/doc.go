// Package passes holds the concrete formatting passes and the registry that
// names them. Every pass lexes its input into a fresh pass.Walker, so passes
// compose only through the text they return.
package passes
