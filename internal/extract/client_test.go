package extract

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func visionReply(text string) string {
	body, _ := json.Marshal(map[string]any{
		"content": []map[string]string{{"type": "text", "text": text}},
	})
	return string(body)
}

func TestTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		var req visionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Messages) != 1 || len(req.Messages[0].Content) != 2 {
			t.Fatalf("unexpected message shape: %+v", req.Messages)
		}
		if req.Messages[0].Content[0].Source.MediaType != "image/png" {
			t.Errorf("media type = %s", req.Messages[0].Content[0].Source.MediaType)
		}
		w.Write([]byte(visionReply("```json\n{\"personalInfo\":{\"fullName\":\"Ada\"},\"sections\":[]}\n```")))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model")
	raw, err := c.Transcribe(context.Background(), "image/png", []byte("fake-image"))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if raw.PersonalInfo.FullName != "Ada" {
		t.Fatalf("fullName = %q", raw.PersonalInfo.FullName)
	}
}

func TestTranscribePDFUsesDocumentBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req visionRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if got := req.Messages[0].Content[0].Type; got != "document" {
			t.Errorf("content block type = %s, want document", got)
		}
		w.Write([]byte(visionReply("{}")))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "m")
	if _, err := c.Transcribe(context.Background(), "application/pdf", []byte("%PDF-1.4")); err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
}

func TestTranscribeRetryableStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "m")
	_, err := c.Transcribe(context.Background(), "image/png", []byte("x"))
	var retryable *RetryableError
	if !errors.As(err, &retryable) {
		t.Fatalf("expected RetryableError, got %v", err)
	}
	if retryable.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status = %d", retryable.StatusCode)
	}
}

func TestTranscribeHardFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "m")
	_, err := c.Transcribe(context.Background(), "image/png", []byte("x"))
	if err == nil {
		t.Fatalf("expected error")
	}
	var retryable *RetryableError
	if errors.As(err, &retryable) {
		t.Fatalf("400 must not be retryable")
	}
}
