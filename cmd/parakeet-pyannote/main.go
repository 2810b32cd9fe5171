// Command parakeet-pyannote benchmarks the fully local pipeline:
// Parakeet-MLX transcription with pyannote speaker diarization.
package main

import (
	"github.com/kbukum/audiobench/bootstrap"
	"github.com/kbukum/audiobench/diarization/pyannote"
	"github.com/kbukum/audiobench/transcription/parakeet"
)

func main() {
	bootstrap.App{
		Name:        "parakeet-pyannote",
		Transcriber: parakeet.ProviderName,
		Diarizer:    pyannote.ProviderName,
	}.Main()
}
