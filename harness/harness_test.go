package harness

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/shopspring/decimal"

	"github.com/kbukum/audiobench/diarization"
	"github.com/kbukum/audiobench/errors"
	"github.com/kbukum/audiobench/results"
	"github.com/kbukum/audiobench/transcription"
)

type fakeTranscriber struct {
	name  string
	resp  *transcription.TranscriptionResponse
	err   error
	calls int
}

func (f *fakeTranscriber) Name() string { return f.name }

func (f *fakeTranscriber) IsAvailable(context.Context) bool { return true }

func (f *fakeTranscriber) Transcribe(_ context.Context, _ transcription.TranscriptionRequest) (*transcription.TranscriptionResponse, error) {
	f.calls++
	return f.resp, f.err
}

type fakeDiarizer struct {
	name string
	resp *diarization.DiarizationResponse
	err  error
}

func (f *fakeDiarizer) Name() string { return f.name }

func (f *fakeDiarizer) IsAvailable(context.Context) bool { return true }

func (f *fakeDiarizer) Diarize(_ context.Context, _ diarization.DiarizationRequest) (*diarization.DiarizationResponse, error) {
	return f.resp, f.err
}

// writeSample places a one-minute WAV file in a fresh sample directory.
func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "sample.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	const sampleRate = 8000
	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, sampleRate*60),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	return dir
}

func newStore(t *testing.T) results.Store {
	t.Helper()
	store, err := results.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestNewRunner_Validation(t *testing.T) {
	_, err := NewRunner(Options{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.IsConfig(err) {
		t.Errorf("expected config error classification, got %v", err)
	}
}

func TestRunner_Run_TranscribeOnly(t *testing.T) {
	transcriber := &fakeTranscriber{
		name: "voxtral",
		resp: &transcription.TranscriptionResponse{
			Text: "hello world",
			Segments: []transcription.Segment{
				{Start: 0, End: 30, Text: "hello world"},
			},
			Duration: 60,
		},
	}

	r, err := NewRunner(Options{
		Method:      "voxtral",
		SampleDir:   writeSample(t),
		Transcriber: transcriber,
		Store:       newStore(t),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	record, path, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path == "" {
		t.Error("expected result path")
	}
	if record.Diarized {
		t.Error("expected no diarization")
	}
	if record.Transcript != "hello world" {
		t.Errorf("unexpected transcript %q", record.Transcript)
	}
	// One minute of audio at the voxtral rate is exactly $0.001.
	if !record.CostEstimate.Equal(decimal.RequireFromString("0.001")) {
		t.Errorf("expected cost 0.001, got %s", record.CostEstimate)
	}
	if record.AudioFile != "sample.wav" {
		t.Errorf("unexpected audio file %q", record.AudioFile)
	}
}

func TestRunner_Run_WithDiarization(t *testing.T) {
	transcriber := &fakeTranscriber{
		name: "openai",
		resp: &transcription.TranscriptionResponse{
			Text: "hello hi",
			Segments: []transcription.Segment{
				{Start: 0, End: 20, Text: "hello"},
				{Start: 20, End: 60, Text: "hi"},
			},
			Duration: 60,
		},
	}
	diarizer := &fakeDiarizer{
		name: "pyannote",
		resp: &diarization.DiarizationResponse{
			Segments: []diarization.Segment{
				{Speaker: "SPEAKER_00", Start: 0, End: 25},
				{Speaker: "SPEAKER_01", Start: 25, End: 60},
			},
			NumSpeakers: 2,
		},
	}

	r, err := NewRunner(Options{
		Method:      "openai_diarize",
		SampleDir:   writeSample(t),
		Transcriber: transcriber,
		Diarizer:    diarizer,
		Store:       newStore(t),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	record, _, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !record.Diarized || record.NumSpeakers != 2 {
		t.Errorf("expected diarized record with 2 speakers, got %+v", record)
	}
	if record.Segments[0].Speaker != "SPEAKER_00" || record.Segments[1].Speaker != "SPEAKER_01" {
		t.Errorf("unexpected speaker attribution: %+v", record.Segments)
	}
	if len(record.Turns) != 2 {
		t.Errorf("expected 2 turns, got %d", len(record.Turns))
	}
	// Local diarization adds nothing to the one-minute OpenAI cost.
	if !record.CostEstimate.Equal(decimal.RequireFromString("0.006")) {
		t.Errorf("expected cost 0.006, got %s", record.CostEstimate)
	}
	if !record.CostBreakdown["pyannote"].IsZero() {
		t.Errorf("expected free diarization, got %s", record.CostBreakdown["pyannote"])
	}
}

func TestRunner_Run_BackendDurationWinsOverProbe(t *testing.T) {
	transcriber := &fakeTranscriber{
		name: "voxtral",
		resp: &transcription.TranscriptionResponse{
			Text:     "long talk",
			Duration: 120,
		},
	}

	r, err := NewRunner(Options{
		Method:      "voxtral",
		SampleDir:   writeSample(t), // the probe sees a one-minute file
		Transcriber: transcriber,
		Store:       newStore(t),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	record, _, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.DurationSeconds != 120 {
		t.Errorf("expected backend duration 120, got %g", record.DurationSeconds)
	}
	if !record.CostEstimate.Equal(decimal.RequireFromString("0.002")) {
		t.Errorf("expected cost from backend duration, got %s", record.CostEstimate)
	}
}

func TestRunner_Run_NoSampleSkipsBackends(t *testing.T) {
	transcriber := &fakeTranscriber{name: "openai"}

	r, err := NewRunner(Options{
		Method:      "openai",
		SampleDir:   t.TempDir(),
		Transcriber: transcriber,
		Store:       newStore(t),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, err = r.Run(context.Background())
	if err == nil {
		t.Fatal("expected sample-not-found error")
	}
	if errors.CodeOf(err) != errors.ErrCodeSampleNotFound {
		t.Errorf("expected SAMPLE_NOT_FOUND, got %s", errors.CodeOf(err))
	}
	if transcriber.calls != 0 {
		t.Errorf("backend must not be called without a sample, got %d calls", transcriber.calls)
	}
}

func TestRunner_Run_BackendErrorPropagates(t *testing.T) {
	transcriber := &fakeTranscriber{
		name: "openai",
		err:  errors.Backend("openai", os.ErrDeadlineExceeded),
	}

	r, err := NewRunner(Options{
		Method:      "openai",
		SampleDir:   writeSample(t),
		Transcriber: transcriber,
		Store:       newStore(t),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, err = r.Run(context.Background())
	if err == nil {
		t.Fatal("expected backend error")
	}
	if !errors.IsBackend(err) {
		t.Errorf("expected backend classification, got %v", err)
	}
}
