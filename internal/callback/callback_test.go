package callback

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/calldoc/transcription-service/internal/types"
)

// TestDeliverPostsResult verifies the JSON POST payload and content type.
func TestDeliverPostsResult(t *testing.T) {
	var (
		mu          sync.Mutex
		gotBody     []byte
		gotType     string
		gotMethod   string
		requestSeen bool
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		requestSeen = true
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	result := &types.TranscriptionResult{
		JobID:      "job-1",
		Status:     "completed",
		Transcript: "hello",
		Language:   "en",
	}

	NewDeliverer().Deliver(context.Background(), srv.URL, result)

	mu.Lock()
	defer mu.Unlock()
	if !requestSeen {
		t.Fatal("no callback request received")
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("method = %s, want POST", gotMethod)
	}
	if gotType != "application/json" {
		t.Fatalf("content type = %q", gotType)
	}

	var decoded types.TranscriptionResult
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if decoded.JobID != "job-1" || decoded.Transcript != "hello" {
		t.Fatalf("payload = %+v", decoded)
	}
}

// TestDeliverSwallowsFailures verifies connection errors and error statuses
// never propagate.
func TestDeliverSwallowsFailures(t *testing.T) {
	result := &types.TranscriptionResult{JobID: "job-1", Status: "completed"}
	d := NewDeliverer()

	// Connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()
	d.Deliver(context.Background(), url, result)

	// Non-success status.
	errSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer errSrv.Close()
	d.Deliver(context.Background(), errSrv.URL, result)

	// Unparseable URL.
	d.Deliver(context.Background(), "http://\x00bad", result)
}
