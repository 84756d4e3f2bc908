// Package highlight implements the Scribemark interval engine: non-overlapping
// labeled time-ranges ("highlights") anchored to the word timestamps of a
// transcript.
//
// The engine is pure data. It owns no rendering, no I/O, and no goroutines;
// every operation returns synchronously and every collection operation returns
// a new slice rather than mutating its input. A host UI drives it through
// three gesture primitives (Begin/Move/End over a token) and consumes its
// query predicates on each render tick.
//
// Component layout:
//
//	token.go      — Token and TokenIndex (timestamp ↔ index resolution)
//	color.go      — deterministic color allocation with recycling
//	interval.go   — immutable interval operations, the invariant-bearing core
//	selection.go  — range-selection gesture state machine
//	drag.go       — boundary expand/contract gesture state machine
//	suggestion.go — externally proposed intervals, accept/reject
//	group.go      — tokens + intervals → contiguous display runs
//	editor.go     — session wrapper: gesture routing and change notification
//	wire.go       — persisted wire shapes and lenient decoding
//
// All interactive manipulation happens in timestamp coordinates. Token
// indices appear only at the boundaries (suggestion ingress, display), never
// inside the gesture state machines, to avoid round-trip precision drift.
package highlight
