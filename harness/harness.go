// Package harness drives a single benchmark run: it locates the audio
// sample, invokes the configured backends, attributes speakers, prices
// the run, and persists the result record.
package harness

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kbukum/audiobench/align"
	"github.com/kbukum/audiobench/audio"
	"github.com/kbukum/audiobench/diarization"
	"github.com/kbukum/audiobench/errors"
	"github.com/kbukum/audiobench/logger"
	"github.com/kbukum/audiobench/pricing"
	"github.com/kbukum/audiobench/results"
	"github.com/kbukum/audiobench/transcription"
)

// Options configures a Runner.
type Options struct {
	// Method names the backend combination for the result record.
	Method string
	// SampleDir is the directory holding the audio sample.
	SampleDir string
	// Transcriber is the transcription backend.
	Transcriber transcription.Provider
	// Diarizer is the diarization backend, nil to skip speaker attribution.
	Diarizer diarization.Provider
	// Store persists the result record.
	Store results.Store
	// Log receives progress output. Defaults to the global logger.
	Log *logger.Logger
}

// Runner executes one benchmark run. A new Runner is built per
// invocation; it holds no state across runs.
type Runner struct {
	opts Options
	log  *logger.Logger
}

// NewRunner validates the options and creates a Runner.
func NewRunner(opts Options) (*Runner, error) {
	if opts.Method == "" {
		return nil, errors.InvalidConfig("method is required")
	}
	if opts.SampleDir == "" {
		return nil, errors.InvalidConfig("sample directory is required")
	}
	if opts.Transcriber == nil {
		return nil, errors.InvalidConfig("transcription backend is required")
	}
	if opts.Store == nil {
		return nil, errors.InvalidConfig("result store is required")
	}
	log := opts.Log
	if log == nil {
		log = logger.WithComponent("harness")
	}
	return &Runner{opts: opts, log: log}, nil
}

// Run executes the benchmark and returns the persisted record together
// with the path it was written to.
func (r *Runner) Run(ctx context.Context) (*results.Record, string, error) {
	samplePath, err := audio.FindSample(r.opts.SampleDir)
	if err != nil {
		return nil, "", err
	}
	r.log.Info("found audio sample", map[string]any{"path": samplePath})

	durationSeconds, err := audio.Duration(ctx, samplePath)
	if err != nil {
		return nil, "", err
	}
	r.log.Info("probed sample duration", map[string]any{
		"seconds": fmt.Sprintf("%.1f", durationSeconds),
	})

	record := results.NewRecord(r.opts.Method)
	record.AudioFile = filepath.Base(samplePath)
	record.DurationSeconds = durationSeconds

	started := time.Now()

	r.log.Info("transcribing", map[string]any{"provider": r.opts.Transcriber.Name()})
	transcript, err := r.opts.Transcriber.Transcribe(ctx, transcription.TranscriptionRequest{
		AudioPath: samplePath,
	})
	if err != nil {
		return nil, "", err
	}
	record.Transcript = transcript.Text
	record.Segments = transcript.Segments
	// The backend measured the actual decoded audio, prefer it over the probe.
	if transcript.Duration > 0 {
		record.DurationSeconds = transcript.Duration
	}

	if r.opts.Diarizer != nil {
		r.log.Info("diarizing", map[string]any{"provider": r.opts.Diarizer.Name()})
		diarized, err := r.opts.Diarizer.Diarize(ctx, diarization.DiarizationRequest{
			AudioPath: samplePath,
		})
		if err != nil {
			return nil, "", err
		}
		record.Diarized = true
		record.NumSpeakers = diarized.NumSpeakers
		record.Segments = align.Speakers(transcript.Segments, diarized.Segments)
		record.Turns = align.Turns(record.Segments)
	}

	record.ProcessingSeconds = time.Since(started).Seconds()
	record.CostBreakdown, record.CostEstimate = r.price(record.DurationSeconds)

	path, err := r.opts.Store.Save(ctx, record)
	if err != nil {
		return nil, "", err
	}
	r.log.Info("run complete", map[string]any{
		"result":     path,
		"cost_usd":   record.CostEstimate.StringFixed(4),
		"processing": fmt.Sprintf("%.1fs", record.ProcessingSeconds),
	})
	return record, path, nil
}

// price computes the per-provider cost breakdown and the total.
func (r *Runner) price(durationSeconds float64) (map[string]decimal.Decimal, decimal.Decimal) {
	breakdown := map[string]decimal.Decimal{
		r.opts.Transcriber.Name(): pricing.CostFor(r.opts.Transcriber.Name(), durationSeconds),
	}
	if r.opts.Diarizer != nil {
		breakdown[r.opts.Diarizer.Name()] = pricing.CostFor(r.opts.Diarizer.Name(), durationSeconds)
	}

	total := decimal.Zero
	for _, cost := range breakdown {
		total = total.Add(cost)
	}
	return breakdown, total
}
