// Command voxtral-pyannote benchmarks Mistral Voxtral transcription
// combined with local pyannote speaker diarization.
package main

import (
	"github.com/kbukum/audiobench/bootstrap"
	"github.com/kbukum/audiobench/diarization/pyannote"
	"github.com/kbukum/audiobench/transcription/voxtral"
)

func main() {
	bootstrap.App{
		Name:        "voxtral-pyannote",
		Transcriber: voxtral.ProviderName,
		Diarizer:    pyannote.ProviderName,
	}.Main()
}
