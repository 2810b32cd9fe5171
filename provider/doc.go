// Package provider defines the generic provider abstraction shared by the
// transcription and diarization backends: a base interface with a name and
// an availability check, factories that build providers from configuration
// maps, and a registry of named factories with cached instances.
package provider
