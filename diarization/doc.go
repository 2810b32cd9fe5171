// Package diarization defines the provider interface and common types for
// speaker-diarization backends.
//
// # Backends
//
//   - diarization/pyannote: local Pyannote speaker-diarization model
package diarization
