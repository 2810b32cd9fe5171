// Package voxtral implements transcription using Mistral's Voxtral audio
// transcription API.
package voxtral

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/kbukum/audiobench/errors"
	"github.com/kbukum/audiobench/httpclient"
	"github.com/kbukum/audiobench/provider"
	"github.com/kbukum/audiobench/transcription"
)

const (
	// ProviderName is the registered name for the Voxtral provider.
	ProviderName = "voxtral"

	defaultBaseURL = "https://api.mistral.ai/v1"
	defaultModel   = "voxtral-mini-latest"
	defaultTimeout = 600 * time.Second
)

// Config holds configuration for the Voxtral transcription provider.
type Config struct {
	APIKey  string        `json:"api_key"`
	BaseURL string        `json:"base_url"`
	Model   string        `json:"model"`
	Timeout time.Duration `json:"timeout"`
}

// Provider implements transcription.Provider using the Mistral Voxtral API.
type Provider struct {
	cfg    Config
	client *httpclient.Client
}

// NewProvider creates a new Voxtral transcription provider.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.MissingCredential(ProviderName, "MISTRAL_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	client, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Auth:    httpclient.BearerAuth(cfg.APIKey),
	})
	if err != nil {
		return nil, err
	}
	return &Provider{cfg: cfg, client: client}, nil
}

// Factory returns a provider.Factory that creates Voxtral Provider
// instances from a generic config map.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
		vc := Config{}
		if v, ok := cfg["api_key"].(string); ok {
			vc.APIKey = v
		}
		if v, ok := cfg["base_url"].(string); ok {
			vc.BaseURL = v
		}
		if v, ok := cfg["model"].(string); ok {
			vc.Model = v
		}
		if v, ok := cfg["timeout"].(time.Duration); ok {
			vc.Timeout = v
		}
		return NewProvider(vc)
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable reports whether the provider is configured with a credential.
func (p *Provider) IsAvailable(_ context.Context) bool {
	return p.cfg.APIKey != ""
}

// Transcribe uploads the audio file to the Voxtral API and returns the
// transcription with segment timestamps.
func (p *Provider) Transcribe(ctx context.Context, req transcription.TranscriptionRequest) (*transcription.TranscriptionResponse, error) {
	audioData, err := os.ReadFile(req.AudioPath)
	if err != nil {
		return nil, errors.InvalidSample(req.AudioPath, err)
	}

	model := p.cfg.Model
	if req.Model != "" {
		model = req.Model
	}

	fields := map[string]string{
		"model":                   model,
		"response_format":         "verbose_json",
		"timestamp_granularities": "segment",
	}
	if req.Language != "" {
		fields["language"] = req.Language
	}

	resp, err := p.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/audio/transcriptions",
		Body: &httpclient.MultipartBody{
			Fields: fields,
			Files: []httpclient.FileField{{
				FieldName:   "file",
				FileName:    filepath.Base(req.AudioPath),
				ContentType: "audio/mpeg",
				Data:        audioData,
			}},
		},
	})
	if err != nil {
		return nil, errors.Backend(ProviderName, err)
	}

	var result voxtralResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, errors.UnexpectedShape(ProviderName, err)
	}

	return toTranscriptionResponse(&result), nil
}

// --- internal Voxtral API response types ---

type voxtralResponse struct {
	Text     string           `json:"text"`
	Segments []voxtralSegment `json:"segments"`
	Duration float64          `json:"duration"`
	Language string           `json:"language"`
}

type voxtralSegment struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

func toTranscriptionResponse(resp *voxtralResponse) *transcription.TranscriptionResponse {
	segments := make([]transcription.Segment, len(resp.Segments))
	for i, seg := range resp.Segments {
		segments[i] = transcription.Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		}
	}

	duration := resp.Duration
	if duration == 0 && len(resp.Segments) > 0 {
		duration = resp.Segments[len(resp.Segments)-1].End
	}

	return &transcription.TranscriptionResponse{
		Text:     resp.Text,
		Segments: segments,
		Duration: duration,
		Language: resp.Language,
	}
}
