// Package parakeet implements transcription using a local Parakeet-MLX
// model invoked through its CLI. No API calls, no file size limits, and
// zero cost per run.
package parakeet

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/kbukum/audiobench/errors"
	"github.com/kbukum/audiobench/process"
	"github.com/kbukum/audiobench/provider"
	"github.com/kbukum/audiobench/transcription"
)

const (
	// ProviderName is the registered name for the Parakeet provider.
	ProviderName = "parakeet"

	defaultBinary  = "parakeet-mlx"
	defaultModel   = "mlx-community/parakeet-tdt-0.6b-v3"
	defaultTimeout = 30 * time.Minute
)

// Config holds configuration for the Parakeet transcription provider.
type Config struct {
	// Binary is the parakeet-mlx CLI executable.
	Binary string `json:"binary"`
	// Model is the pretrained model identifier.
	Model string `json:"model"`
	// Timeout bounds a single transcription run.
	Timeout time.Duration `json:"timeout"`
}

// Provider implements transcription.Provider by shelling out to the
// parakeet-mlx CLI, which writes a JSON result next to the input file.
type Provider struct {
	cfg Config
}

// NewProvider creates a new Parakeet transcription provider.
func NewProvider(cfg Config) *Provider {
	if cfg.Binary == "" {
		cfg.Binary = defaultBinary
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Provider{cfg: cfg}
}

// Factory returns a provider.Factory that creates Parakeet Provider
// instances from a generic config map.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
		pc := Config{}
		if v, ok := cfg["binary"].(string); ok {
			pc.Binary = v
		}
		if v, ok := cfg["model"].(string); ok {
			pc.Model = v
		}
		if v, ok := cfg["timeout"].(time.Duration); ok {
			pc.Timeout = v
		}
		return NewProvider(pc), nil
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable checks whether the parakeet-mlx CLI is on PATH.
func (p *Provider) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath(p.cfg.Binary)
	return err == nil
}

// Transcribe runs the local model over the audio file and parses the JSON
// result the CLI writes alongside it.
func (p *Provider) Transcribe(ctx context.Context, req transcription.TranscriptionRequest) (*transcription.TranscriptionResponse, error) {
	if _, err := os.Stat(req.AudioPath); err != nil {
		return nil, errors.InvalidSample(req.AudioPath, err)
	}

	model := p.cfg.Model
	if req.Model != "" {
		model = req.Model
	}

	outputDir := filepath.Dir(req.AudioPath)
	runCtx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	_, err := process.Run(runCtx, process.Command{
		Binary: p.cfg.Binary,
		Args: []string{
			req.AudioPath,
			"--model", model,
			"--output-format", "json",
			"--output-dir", outputDir,
		},
	})
	if err != nil {
		return nil, errors.Backend(ProviderName, err)
	}

	resultPath := strings.TrimSuffix(req.AudioPath, filepath.Ext(req.AudioPath)) + ".json"
	data, err := os.ReadFile(resultPath)
	if err != nil {
		return nil, errors.UnexpectedShape(ProviderName, err)
	}

	var result parakeetResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, errors.UnexpectedShape(ProviderName, err)
	}

	return toTranscriptionResponse(&result), nil
}

// --- internal Parakeet CLI result types ---

type parakeetResult struct {
	Text      string             `json:"text"`
	Sentences []parakeetSentence `json:"sentences"`
}

type parakeetSentence struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

func toTranscriptionResponse(result *parakeetResult) *transcription.TranscriptionResponse {
	segments := make([]transcription.Segment, len(result.Sentences))
	for i, s := range result.Sentences {
		segments[i] = transcription.Segment{
			Start: s.Start,
			End:   s.End,
			Text:  strings.TrimSpace(s.Text),
		}
	}

	var duration float64
	if len(result.Sentences) > 0 {
		duration = result.Sentences[len(result.Sentences)-1].End
	}

	return &transcription.TranscriptionResponse{
		Text:     result.Text,
		Segments: segments,
		Duration: duration,
	}
}
