// Package pyannote implements speaker diarization using a local
// pyannote.audio pipeline invoked through its CLI. The model runs
// locally, but downloading its weights requires a Hugging Face token.
package pyannote

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/kbukum/audiobench/diarization"
	"github.com/kbukum/audiobench/errors"
	"github.com/kbukum/audiobench/process"
	"github.com/kbukum/audiobench/provider"
)

const (
	// ProviderName is the registered name for the pyannote provider.
	ProviderName = "pyannote"

	defaultBinary  = "pyannote-audio"
	defaultModel   = "pyannote/speaker-diarization-3.1"
	defaultTimeout = 30 * time.Minute
)

// Config holds configuration for the pyannote diarization provider.
type Config struct {
	// Binary is the pyannote CLI executable.
	Binary string `json:"binary"`
	// Model is the diarization pipeline identifier.
	Model string `json:"model"`
	// HuggingFaceToken authenticates the model download.
	HuggingFaceToken string `json:"huggingface_token"`
	// Timeout bounds a single diarization run.
	Timeout time.Duration `json:"timeout"`
}

// Provider implements diarization.Provider by shelling out to the
// pyannote CLI, which prints speaker segments as JSON on stdout.
type Provider struct {
	cfg Config
}

// NewProvider creates a new pyannote diarization provider.
// A missing Hugging Face token is a configuration error reported before
// any subprocess is spawned.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.HuggingFaceToken == "" {
		return nil, errors.MissingCredential(ProviderName, "HUGGINGFACE_TOKEN")
	}
	if cfg.Binary == "" {
		cfg.Binary = defaultBinary
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Provider{cfg: cfg}, nil
}

// Factory returns a provider.Factory that creates pyannote Provider
// instances from a generic config map.
func Factory() provider.Factory[diarization.Provider] {
	return func(cfg map[string]any) (diarization.Provider, error) {
		pc := Config{}
		if v, ok := cfg["binary"].(string); ok {
			pc.Binary = v
		}
		if v, ok := cfg["model"].(string); ok {
			pc.Model = v
		}
		if v, ok := cfg["huggingface_token"].(string); ok {
			pc.HuggingFaceToken = v
		}
		if v, ok := cfg["timeout"].(time.Duration); ok {
			pc.Timeout = v
		}
		return NewProvider(pc)
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable checks whether the pyannote CLI is on PATH.
func (p *Provider) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath(p.cfg.Binary)
	return err == nil
}

// Diarize runs the local pipeline over the audio file and returns
// speaker-attributed segments.
func (p *Provider) Diarize(ctx context.Context, req diarization.DiarizationRequest) (*diarization.DiarizationResponse, error) {
	if _, err := os.Stat(req.AudioPath); err != nil {
		return nil, errors.InvalidSample(req.AudioPath, err)
	}

	args := []string{req.AudioPath, "--model", p.cfg.Model, "--output-format", "json"}
	if req.NumSpeakers > 0 {
		args = append(args, "--num-speakers", strconv.Itoa(req.NumSpeakers))
	} else {
		if req.MinSpeakers > 0 {
			args = append(args, "--min-speakers", strconv.Itoa(req.MinSpeakers))
		}
		if req.MaxSpeakers > 0 {
			args = append(args, "--max-speakers", strconv.Itoa(req.MaxSpeakers))
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	result, err := process.Run(runCtx, process.Command{
		Binary: p.cfg.Binary,
		Args:   args,
		Env:    []string{"HUGGINGFACE_TOKEN=" + p.cfg.HuggingFaceToken},
	})
	if err != nil {
		return nil, errors.Backend(ProviderName, err)
	}

	var out pyannoteResult
	if err := json.Unmarshal(result.Stdout, &out); err != nil {
		return nil, errors.UnexpectedShape(ProviderName, err)
	}

	return toDiarizationResponse(&out), nil
}

// --- internal pyannote CLI result types ---

type pyannoteResult struct {
	Segments    []pyannoteSegment `json:"segments"`
	NumSpeakers int               `json:"num_speakers"`
}

type pyannoteSegment struct {
	Speaker string  `json:"speaker"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
}

func toDiarizationResponse(result *pyannoteResult) *diarization.DiarizationResponse {
	segments := make([]diarization.Segment, len(result.Segments))
	speakers := make(map[string]struct{})
	for i, s := range result.Segments {
		segments[i] = diarization.Segment{
			Speaker: s.Speaker,
			Start:   s.Start,
			End:     s.End,
		}
		speakers[s.Speaker] = struct{}{}
	}

	numSpeakers := result.NumSpeakers
	if numSpeakers == 0 {
		numSpeakers = len(speakers)
	}

	return &diarization.DiarizationResponse{
		Segments:    segments,
		NumSpeakers: numSpeakers,
	}
}
