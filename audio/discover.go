package audio

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kbukum/audiobench/errors"
)

// supportedExtensions are the audio formats the harness accepts.
var supportedExtensions = map[string]struct{}{
	".mp3":  {},
	".wav":  {},
	".m4a":  {},
	".flac": {},
	".ogg":  {},
	".webm": {},
}

// IsSupported reports whether the file has a recognized audio extension.
func IsSupported(path string) bool {
	_, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// FindSample returns the path of the audio sample in dir. Each run
// operates on a single sample; when the directory holds more than one,
// the lexically first wins so repeated runs pick the same file.
func FindSample(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.SampleNotFound(dir)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") || !IsSupported(entry.Name()) {
			continue
		}
		candidates = append(candidates, entry.Name())
	}
	if len(candidates) == 0 {
		return "", errors.SampleNotFound(dir)
	}

	sort.Strings(candidates)
	return filepath.Join(dir, candidates[0]), nil
}
