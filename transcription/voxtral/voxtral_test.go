package voxtral

import (
	"context"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/kbukum/audiobench/errors"
	"github.com/kbukum/audiobench/transcription"
)

func TestNewProvider_MissingAPIKey(t *testing.T) {
	_, err := NewProvider(Config{})
	if err == nil {
		t.Fatal("expected missing credential error")
	}
	if errors.CodeOf(err) != errors.ErrCodeMissingCredential {
		t.Errorf("expected MISSING_CREDENTIAL, got %s", errors.CodeOf(err))
	}
}

func TestProvider_Transcribe(t *testing.T) {
	audioPath := filepath.Join(t.TempDir(), "meeting.mp3")
	if err := os.WriteFile(audioPath, []byte("ID3fake"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer mk-test" {
			t.Errorf("expected bearer auth, got %q", got)
		}
		_, params, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		form, err := multipart.NewReader(r.Body, params["boundary"]).ReadForm(1 << 20)
		if err != nil {
			t.Fatalf("read form: %v", err)
		}
		if got := form.Value["model"]; len(got) != 1 || got[0] != "voxtral-mini-latest" {
			t.Errorf("expected voxtral model, got %v", got)
		}
		if got := form.Value["timestamp_granularities"]; len(got) != 1 || got[0] != "segment" {
			t.Errorf("expected segment granularity, got %v", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"text": "bonjour le monde",
			"language": "fr",
			"segments": [
				{"text": "bonjour", "start": 0, "end": 2},
				{"text": "le monde", "start": 2, "end": 4.5}
			]
		}`))
	}))
	defer srv.Close()

	p, err := NewProvider(Config{APIKey: "mk-test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := p.Transcribe(context.Background(), transcription.TranscriptionRequest{AudioPath: audioPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "bonjour le monde" {
		t.Errorf("unexpected text %q", resp.Text)
	}
	// No duration in the response: falls back to the last segment end.
	if resp.Duration != 4.5 {
		t.Errorf("expected duration 4.5, got %f", resp.Duration)
	}
	if resp.Language != "fr" {
		t.Errorf("expected language fr, got %s", resp.Language)
	}
}

func TestProvider_Transcribe_ServerError(t *testing.T) {
	audioPath := filepath.Join(t.TempDir(), "meeting.mp3")
	if err := os.WriteFile(audioPath, []byte("ID3fake"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p, _ := NewProvider(Config{APIKey: "mk-test", BaseURL: srv.URL})
	_, err := p.Transcribe(context.Background(), transcription.TranscriptionRequest{AudioPath: audioPath})
	if err == nil {
		t.Fatal("expected backend error")
	}
	if !errors.IsBackend(err) {
		t.Errorf("expected backend classification, got %v", err)
	}
}

func TestProvider_Transcribe_MalformedResponse(t *testing.T) {
	audioPath := filepath.Join(t.TempDir(), "meeting.mp3")
	if err := os.WriteFile(audioPath, []byte("ID3fake"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	p, _ := NewProvider(Config{APIKey: "mk-test", BaseURL: srv.URL})
	_, err := p.Transcribe(context.Background(), transcription.TranscriptionRequest{AudioPath: audioPath})
	if err == nil {
		t.Fatal("expected unexpected-shape error")
	}
	if errors.CodeOf(err) != errors.ErrCodeUnexpectedShape {
		t.Errorf("expected UNEXPECTED_RESPONSE_SHAPE, got %s", errors.CodeOf(err))
	}
}
