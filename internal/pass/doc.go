// Package pass defines the contract every formatting pass implements and the
// Walker, the per-run cursor over a token stream that passes build their
// output with.
//
// A pass never shares tokens with another pass: Format receives text, lexes it
// into a fresh Walker and returns text. The Walker answers "what is near the
// cursor" (neighbours with ignore sets, memoised lookback) and skips structural
// regions (paired delimiters, control structures) with explicit depth counters.
package pass
