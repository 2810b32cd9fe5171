// Package errors provides unified error handling for audiobench.
// It implements structured error types with machine-readable codes covering
// the three failure classes of a benchmark run: configuration errors
// (missing credentials), input errors (missing or invalid audio sample),
// and backend errors (a transcription or diarization call failed).
//
// None of these are recovered locally; they propagate to the top of the run
// and terminate it with the underlying cause attached.
package errors
