package results

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kbukum/audiobench/errors"
)

// Store persists benchmark records.
type Store interface {
	// Save writes the record and returns the path of the JSON file.
	Save(ctx context.Context, record *Record) (string, error)
}

// LocalStore implements Store on the local filesystem. Each record is
// written as a JSON file plus a human-readable text report next to it.
type LocalStore struct {
	basePath string
}

// NewLocalStore creates a store rooted at basePath, creating the
// directory if needed.
func NewLocalStore(basePath string) (*LocalStore, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, errors.Storage(fmt.Errorf("resolve results path: %w", err))
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, errors.Storage(fmt.Errorf("create results directory: %w", err))
	}
	return &LocalStore{basePath: abs}, nil
}

// Save writes the record as <method>_<timestamp>_<runid>_<sample>.json
// with a companion .txt report. The run ID in the name makes collisions
// impossible, so previous results are never overwritten.
func (s *LocalStore) Save(_ context.Context, record *Record) (string, error) {
	base := fmt.Sprintf("%s_%s_%s_%s",
		record.Method,
		record.CreatedAt.Format("20060102_150405"),
		shortID(record.RunID),
		sampleStem(record.AudioFile),
	)

	jsonPath := filepath.Join(s.basePath, base+".json")
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", errors.Storage(fmt.Errorf("encode record: %w", err))
	}
	if err := writeExclusive(jsonPath, data); err != nil {
		return "", err
	}

	txtPath := filepath.Join(s.basePath, base+".txt")
	if err := writeExclusive(txtPath, []byte(renderText(record))); err != nil {
		return "", err
	}
	return jsonPath, nil
}

// writeExclusive refuses to replace an existing file.
func writeExclusive(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return errors.Storage(fmt.Errorf("create result file: %w", err))
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return errors.Storage(fmt.Errorf("write result file: %w", err))
	}
	return nil
}

func shortID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}

func sampleStem(audioFile string) string {
	stem := strings.TrimSuffix(audioFile, filepath.Ext(audioFile))
	if stem == "" {
		return "sample"
	}
	return stem
}
