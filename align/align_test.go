package align

import (
	"testing"

	"github.com/kbukum/audiobench/diarization"
	"github.com/kbukum/audiobench/transcription"
)

func TestSpeakers_MidpointMatching(t *testing.T) {
	transcript := []transcription.Segment{
		{Start: 0, End: 2, Text: "hello"},     // midpoint 1.0 -> SPEAKER_00
		{Start: 2, End: 6, Text: "hi there"},  // midpoint 4.0 -> SPEAKER_01
		{Start: 20, End: 22, Text: "anybody"}, // midpoint 21.0 -> no range
	}
	diarized := []diarization.Segment{
		{Speaker: "SPEAKER_00", Start: 0, End: 3},
		{Speaker: "SPEAKER_01", Start: 3, End: 10},
	}

	got := Speakers(transcript, diarized)
	if got[0].Speaker != "SPEAKER_00" {
		t.Errorf("segment 0: got %q", got[0].Speaker)
	}
	if got[1].Speaker != "SPEAKER_01" {
		t.Errorf("segment 1: got %q", got[1].Speaker)
	}
	if got[2].Speaker != UnknownSpeaker {
		t.Errorf("segment 2: got %q, want %q", got[2].Speaker, UnknownSpeaker)
	}

	// Input must not be mutated.
	if transcript[0].Speaker != "" {
		t.Error("Speakers mutated its input")
	}
}

func TestSpeakers_BoundaryResolvesToEarliestRange(t *testing.T) {
	// Midpoint 3.0 lies on the boundary of both ranges.
	got := Speakers(
		[]transcription.Segment{{Start: 2, End: 4, Text: "x"}},
		[]diarization.Segment{
			{Speaker: "SPEAKER_00", Start: 0, End: 3},
			{Speaker: "SPEAKER_01", Start: 3, End: 10},
		},
	)
	if got[0].Speaker != "SPEAKER_00" {
		t.Errorf("expected earliest matching range, got %q", got[0].Speaker)
	}
}

func TestSpeakers_NoDiarization(t *testing.T) {
	got := Speakers(
		[]transcription.Segment{{Start: 0, End: 1, Text: "x"}},
		nil,
	)
	if got[0].Speaker != UnknownSpeaker {
		t.Errorf("expected %q, got %q", UnknownSpeaker, got[0].Speaker)
	}
}

func TestTurns_GroupsConsecutiveSpeakers(t *testing.T) {
	turns := Turns([]transcription.Segment{
		{Speaker: "SPEAKER_00", Start: 0, End: 1, Text: " hello "},
		{Speaker: "SPEAKER_00", Start: 1, End: 2, Text: "world"},
		{Speaker: "SPEAKER_01", Start: 2, End: 3, Text: "hi"},
		{Speaker: "SPEAKER_00", Start: 3, End: 4, Text: "bye"},
	})

	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	if turns[0].Text != "hello world" {
		t.Errorf("expected joined text, got %q", turns[0].Text)
	}
	if turns[0].Start != 0 || turns[0].End != 2 {
		t.Errorf("expected merged range [0,2], got [%g,%g]", turns[0].Start, turns[0].End)
	}
	if turns[2].Speaker != "SPEAKER_00" {
		t.Errorf("speaker change must start a new turn, got %q", turns[2].Speaker)
	}
}

func TestTurns_Empty(t *testing.T) {
	if turns := Turns(nil); len(turns) != 0 {
		t.Errorf("expected no turns, got %d", len(turns))
	}
}
