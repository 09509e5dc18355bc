// Package pipeline runs an ordered list of passes over source text. Every
// pass receives the previous pass's output, and that output is lexed again
// before it moves on, so a pass that emits broken text is caught at once.
package pipeline
