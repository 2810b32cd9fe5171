package diarization

import (
	"context"

	"github.com/kbukum/audiobench/provider"
)

// Provider is the interface that diarization backends must implement.
type Provider interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Diarize analyzes audio and returns speaker-attributed segments.
	Diarize(ctx context.Context, req DiarizationRequest) (*DiarizationResponse, error)
}
