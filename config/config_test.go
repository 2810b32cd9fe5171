package config

import (
	"testing"

	"github.com/kbukum/audiobench/errors"
)

// fakeFS is a FileSystem with a fixed set of existing paths.
type fakeFS struct {
	existing map[string]bool
	loaded   []string
}

func (f *fakeFS) Exists(path string) bool { return f.existing[path] }
func (f *fakeFS) LoadEnv(path string) error {
	f.loaded = append(f.loaded, path)
	return nil
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("openai-diarize", WithFileSystem(&fakeFS{existing: map[string]bool{}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Paths.SampleDir != "audio_sample" {
		t.Errorf("expected default sample dir audio_sample, got %s", cfg.Paths.SampleDir)
	}
	if cfg.Paths.ResultsDir != "test_results" {
		t.Errorf("expected default results dir test_results, got %s", cfg.Paths.ResultsDir)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AUDIOBENCH_SAMPLE_DIR", "/tmp/samples")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("openai-diarize", WithFileSystem(&fakeFS{existing: map[string]bool{}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Paths.SampleDir != "/tmp/samples" {
		t.Errorf("expected sample dir from env, got %s", cfg.Paths.SampleDir)
	}
	if cfg.Credentials.OpenAIAPIKey != "sk-test" {
		t.Errorf("expected credential from env, got %q", cfg.Credentials.OpenAIAPIKey)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoad_FindsEnvFile(t *testing.T) {
	fs := &fakeFS{existing: map[string]bool{"./.env": true}}
	if _, err := Load("voxtral-pyannote", WithFileSystem(fs)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fs.loaded) != 1 || fs.loaded[0] != "./.env" {
		t.Errorf("expected ./.env to be loaded, got %v", fs.loaded)
	}
}

func TestLoad_ServiceEnvFileWins(t *testing.T) {
	fs := &fakeFS{existing: map[string]bool{
		"./.env":                true,
		"./.env.parakeet-pyannote": false,
		"./cmd/parakeet-pyannote/.env.parakeet-pyannote": true,
	}}
	if _, err := Load("parakeet-pyannote", WithFileSystem(fs)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fs.loaded) != 1 || fs.loaded[0] != "./cmd/parakeet-pyannote/.env.parakeet-pyannote" {
		t.Errorf("expected service-specific env file to win, got %v", fs.loaded)
	}
}

func TestCredentialFor_Missing(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	_, err := cfg.CredentialFor("openai")
	if err == nil {
		t.Fatal("expected missing credential error")
	}
	if errors.CodeOf(err) != errors.ErrCodeMissingCredential {
		t.Errorf("expected MISSING_CREDENTIAL, got %s", errors.CodeOf(err))
	}
}

func TestCredentialFor_Present(t *testing.T) {
	cfg := &Config{Credentials: CredentialsConfig{MistralAPIKey: "mk-1"}}
	got, err := cfg.CredentialFor("voxtral")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "mk-1" {
		t.Errorf("expected mk-1, got %q", got)
	}
}

func TestCredentialFor_LocalProviderNeedsNone(t *testing.T) {
	cfg := &Config{}
	got, err := cfg.CredentialFor("parakeet")
	if err != nil {
		t.Fatalf("local provider should need no credential, got %v", err)
	}
	if got != "" {
		t.Errorf("expected empty credential, got %q", got)
	}
}
