// Package process executes local inference and probing subprocesses
// (parakeet-mlx, pyannote-audio, ffprobe) with captured output, measured
// duration, and graceful termination on context cancellation.
package process
