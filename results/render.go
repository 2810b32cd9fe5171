package results

import (
	"fmt"
	"strings"
)

// renderText produces the human-readable companion report.
func renderText(record *Record) string {
	var b strings.Builder

	b.WriteString("=== TRANSCRIPTION TEST RESULTS ===\n")
	fmt.Fprintf(&b, "Method: %s\n", record.Method)
	fmt.Fprintf(&b, "Run ID: %s\n", record.RunID)
	fmt.Fprintf(&b, "Audio file: %s\n", record.AudioFile)
	fmt.Fprintf(&b, "Audio duration: %.1fs\n", record.DurationSeconds)
	fmt.Fprintf(&b, "Processing time: %.1fs\n", record.ProcessingSeconds)
	fmt.Fprintf(&b, "Estimated cost: $%s\n", record.CostEstimate.StringFixed(4))
	if record.Diarized {
		fmt.Fprintf(&b, "Speakers detected: %d\n", record.NumSpeakers)
	}
	fmt.Fprintf(&b, "Created at: %s\n", record.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	b.WriteString("==================================\n\n")

	switch {
	case len(record.Turns) > 0:
		for _, turn := range record.Turns {
			fmt.Fprintf(&b, "[%s] (%.1fs - %.1fs): %s\n", turn.Speaker, turn.Start, turn.End, turn.Text)
		}
	case record.Transcript != "":
		b.WriteString(strings.TrimSpace(record.Transcript))
		b.WriteString("\n")
	}

	return b.String()
}
