// Package results defines the benchmark result record and persists it to
// the results directory. Every run appends a new timestamped record;
// existing records are never overwritten.
package results

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kbukum/audiobench/align"
	"github.com/kbukum/audiobench/transcription"
)

// Record is the persisted outcome of one benchmark run.
type Record struct {
	// RunID uniquely identifies the run.
	RunID string `json:"run_id"`
	// Method names the backend combination, e.g. "openai_diarize".
	Method string `json:"method"`
	// AudioFile is the base name of the sample that was processed.
	AudioFile string `json:"audio_file"`
	// DurationSeconds is the length of the sample.
	DurationSeconds float64 `json:"duration_seconds"`
	// ProcessingSeconds is the wall-clock time the backends took.
	ProcessingSeconds float64 `json:"processing_seconds"`
	// CostEstimate is the total price of the run in USD.
	CostEstimate decimal.Decimal `json:"cost_estimate"`
	// CostBreakdown maps each provider to its share of the cost.
	CostBreakdown map[string]decimal.Decimal `json:"cost_breakdown,omitempty"`
	// Transcript is the full transcription text.
	Transcript string `json:"transcript"`
	// Segments are the timestamped transcript segments, with speaker
	// labels when diarization ran.
	Segments []transcription.Segment `json:"segments,omitempty"`
	// Turns are consecutive same-speaker segments merged for display.
	Turns []align.Turn `json:"turns,omitempty"`
	// Diarized reports whether speaker attribution ran.
	Diarized bool `json:"diarized"`
	// NumSpeakers is the number of speakers detected, 0 if not diarized.
	NumSpeakers int `json:"num_speakers,omitempty"`
	// CreatedAt is when the run finished.
	CreatedAt time.Time `json:"created_at"`
}

// NewRecord creates a record with a fresh run ID and creation time.
func NewRecord(method string) *Record {
	return &Record{
		RunID:     uuid.NewString(),
		Method:    method,
		CreatedAt: time.Now().UTC(),
	}
}
