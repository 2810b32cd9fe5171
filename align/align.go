// Package align attributes transcript segments to speakers by matching
// them against diarization output on the time axis.
package align

import (
	"strings"

	"github.com/kbukum/audiobench/diarization"
	"github.com/kbukum/audiobench/transcription"
)

// UnknownSpeaker labels transcript segments whose midpoint falls outside
// every diarized speaker range.
const UnknownSpeaker = "UNKNOWN"

// Speakers returns a copy of the transcript segments with speaker labels
// attached. A transcript segment belongs to the diarized range that
// contains its temporal midpoint; overlaps at range boundaries resolve
// to the earliest matching range.
func Speakers(transcript []transcription.Segment, diarized []diarization.Segment) []transcription.Segment {
	out := make([]transcription.Segment, len(transcript))
	for i, seg := range transcript {
		out[i] = seg
		out[i].Speaker = speakerAt(diarized, (seg.Start+seg.End)/2)
	}
	return out
}

func speakerAt(diarized []diarization.Segment, t float64) string {
	for _, d := range diarized {
		if t >= d.Start && t <= d.End {
			return d.Speaker
		}
	}
	return UnknownSpeaker
}

// Turn is a run of consecutive segments spoken by the same speaker.
type Turn struct {
	Speaker string  `json:"speaker"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
}

// Turns merges consecutive same-speaker segments into conversation
// turns, joining their text with single spaces.
func Turns(segments []transcription.Segment) []Turn {
	var turns []Turn
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if len(turns) > 0 && turns[len(turns)-1].Speaker == seg.Speaker {
			last := &turns[len(turns)-1]
			last.End = seg.End
			if text != "" {
				if last.Text != "" {
					last.Text += " "
				}
				last.Text += text
			}
			continue
		}
		turns = append(turns, Turn{
			Speaker: seg.Speaker,
			Start:   seg.Start,
			End:     seg.End,
			Text:    text,
		})
	}
	return turns
}
