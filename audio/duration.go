package audio

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-audio/wav"

	"github.com/kbukum/audiobench/errors"
	"github.com/kbukum/audiobench/process"
)

const probeTimeout = 30 * time.Second

// Duration returns the length of the audio file in seconds. WAV files
// are read directly from their header; everything else goes through
// ffprobe.
func Duration(ctx context.Context, path string) (float64, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, errors.InvalidSample(path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".wav") {
		if seconds, err := wavDuration(path); err == nil {
			return seconds, nil
		}
		// Header unreadable, fall through to ffprobe.
	}
	return ffprobeDuration(ctx, path)
}

func wavDuration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	d, err := wav.NewDecoder(f).Duration()
	if err != nil {
		return 0, err
	}
	return d.Seconds(), nil
}

func ffprobeDuration(ctx context.Context, path string) (float64, error) {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	result, err := process.Run(probeCtx, process.Command{
		Binary: "ffprobe",
		Args: []string{
			"-v", "quiet",
			"-show_entries", "format=duration",
			"-of", "default=noprint_wrappers=1:nokey=1",
			path,
		},
	})
	if err != nil {
		return 0, errors.InvalidSample(path, err)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(result.Stdout)), 64)
	if err != nil || seconds <= 0 {
		return 0, errors.InvalidSample(path, err)
	}
	return seconds, nil
}
