// Package transcription defines the provider interface and common types
// for interacting with speech-to-text backends.
//
// It follows the generic provider pattern with a pluggable registry for
// runtime-selectable backends.
//
// # Backends
//
//   - transcription/openai: OpenAI gpt-4o-transcribe API
//   - transcription/voxtral: Mistral Voxtral API
//   - transcription/parakeet: local Parakeet-MLX model
//
// # Usage
//
//	reg := transcription.NewRegistry()
//	reg.RegisterFactory(openai.ProviderName, openai.Factory())
//	p, err := reg.Create(openai.ProviderName, map[string]any{"api_key": key})
//	result, err := p.Transcribe(ctx, req)
package transcription
