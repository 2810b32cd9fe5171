// Command openai-diarize benchmarks OpenAI transcription combined with
// local pyannote speaker diarization.
package main

import (
	"github.com/kbukum/audiobench/bootstrap"
	"github.com/kbukum/audiobench/diarization/pyannote"
	"github.com/kbukum/audiobench/transcription/openai"
)

func main() {
	bootstrap.App{
		Name:        "openai-diarize",
		Method:      "openai_diarize",
		Transcriber: openai.ProviderName,
		Diarizer:    pyannote.ProviderName,
	}.Main()
}
