// Package config loads audiobench configuration from the environment.
//
// Configuration comes from process environment variables, optionally seeded
// from a .env file discovered in standard locations. Recognized keys:
//
//	OPENAI_API_KEY          credential for the OpenAI transcription backend
//	MISTRAL_API_KEY         credential for the Voxtral transcription backend
//	HUGGINGFACE_TOKEN       access token for the Pyannote diarization model
//	AUDIOBENCH_SAMPLE_DIR   input directory holding the audio sample (default audio_sample)
//	AUDIOBENCH_RESULTS_DIR  output directory for result records (default test_results)
//	LOG_LEVEL, LOG_FORMAT   logging configuration
//
// Absence of a required key for the selected method is a configuration error
// surfaced before any network call is attempted.
package config
