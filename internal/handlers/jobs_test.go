package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/calldoc/transcription-service/internal/types"
)

func postJob(t *testing.T, app *fiber.App, body any) (*http.Response, types.Job) {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("POST /jobs: %v", err)
	}

	var job types.Job
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
			t.Fatalf("decode job: %v", err)
		}
	}
	return resp, job
}

func getJobBody(t *testing.T, app *fiber.App, jobID string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+jobID, nil)
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("GET /jobs/%s: %v", jobID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, body
}

// TestJobLifecycleOverHTTP submits a job, polls it to completion, and
// checks the terminal representation.
func TestJobLifecycleOverHTTP(t *testing.T) {
	audioSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("RIFF fake audio"))
	}))
	defer audioSrv.Close()

	app, _ := newTestApp(t)

	resp, job := postJob(t, app, map[string]string{
		"recording_id": "r1",
		"audio_url":    audioSrv.URL + "/a.wav",
		"language":     "en",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if job.Status != types.StatusPending {
		t.Fatalf("initial status = %s, want pending", job.Status)
	}
	if job.Progress != 0.0 {
		t.Fatalf("initial progress = %v, want 0", job.Progress)
	}
	if job.JobID == "" {
		t.Fatal("job_id missing")
	}

	var final types.Job
	deadline := time.Now().Add(5 * time.Second)
	for {
		code, body := getJobBody(t, app, job.JobID)
		if code != http.StatusOK {
			t.Fatalf("poll status = %d", code)
		}
		if err := json.Unmarshal(body, &final); err != nil {
			t.Fatalf("decode poll: %v", err)
		}
		if final.Status.IsTerminal() {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("job stuck in %s", final.Status)
		}
		time.Sleep(20 * time.Millisecond)
	}

	if final.Status != types.StatusCompleted {
		t.Fatalf("final status = %s (error=%q), want completed", final.Status, final.Error)
	}
	if final.Progress != 1.0 {
		t.Fatalf("final progress = %v, want 1.0", final.Progress)
	}
	if final.Result == nil || final.Result.Transcript == "" {
		t.Fatal("completed job missing result")
	}
	if final.Error != "" {
		t.Fatalf("error = %q, want empty", final.Error)
	}

	// Terminal reads are idempotent: identical bytes with no worker activity.
	_, first := getJobBody(t, app, job.JobID)
	_, second := getJobBody(t, app, job.JobID)
	if !bytes.Equal(first, second) {
		t.Fatal("repeated reads of a terminal job differ")
	}
}

// TestJobDownloadFailureOverHTTP verifies a 404 source surfaces in the
// job's error field.
func TestJobDownloadFailureOverHTTP(t *testing.T) {
	audioSrv := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer audioSrv.Close()

	app, _ := newTestApp(t)

	_, job := postJob(t, app, map[string]string{
		"recording_id": "r1",
		"audio_url":    audioSrv.URL + "/gone.wav",
	})

	var final types.Job
	deadline := time.Now().Add(5 * time.Second)
	for {
		_, body := getJobBody(t, app, job.JobID)
		if err := json.Unmarshal(body, &final); err != nil {
			t.Fatalf("decode poll: %v", err)
		}
		if final.Status.IsTerminal() {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("job never terminal")
		}
		time.Sleep(20 * time.Millisecond)
	}

	if final.Status != types.StatusFailed {
		t.Fatalf("status = %s, want failed", final.Status)
	}
	if !bytes.Contains([]byte(final.Error), []byte("404")) {
		t.Fatalf("error = %q, want mention of 404", final.Error)
	}
	if final.Result != nil {
		t.Fatal("failed job carries a result")
	}
}

// TestJobCreateValidation verifies required fields.
func TestJobCreateValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := postJob(t, app, map[string]string{"recording_id": "r1"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

// TestJobNotFound verifies polling an unknown identifier.
func TestJobNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	code, _ := getJobBody(t, app, "does-not-exist")
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
}
