package queue

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/calldoc/transcription-service/internal/types"
)

// Metadata is the private per-job data the worker needs. It is written once
// at creation and never returned to API callers.
type Metadata struct {
	AudioURL    string
	CallbackURL string
	Language    string
}

// record folds the public job view and its private metadata into one entry
// so both are created atomically and can never drift apart.
type record struct {
	job  types.Job
	meta Metadata
}

// Store is the authoritative in-memory table of jobs. Each record has one
// owning worker after creation; the store only guarantees atomic visibility
// of whole records across goroutines. Records are retained for the process
// lifetime; eviction may be added later.
type Store struct {
	mu      sync.RWMutex
	records map[string]*record
}

// NewStore creates an empty job store.
func NewStore() *Store {
	return &Store{records: make(map[string]*record)}
}

// Create inserts a new pending job with a fresh identifier and returns the
// caller-visible view.
func (s *Store) Create(recordingID string, meta Metadata) types.Job {
	job := types.Job{
		JobID:       uuid.New().String(),
		RecordingID: recordingID,
		Status:      types.StatusPending,
		Progress:    0.0,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.records[job.JobID] = &record{job: job, meta: meta}
	s.mu.Unlock()

	logrus.Infof("Job %s created: recording_id=%s, audio_url=%s", job.JobID, recordingID, meta.AudioURL)
	return job
}

// Get returns a snapshot of a job's visible state.
func (s *Store) Get(jobID string) (types.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[jobID]
	if !ok {
		return types.Job{}, false
	}
	return rec.job, true
}

// Meta returns a job's private metadata.
func (s *Store) Meta(jobID string) (Metadata, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[jobID]
	if !ok {
		return Metadata{}, false
	}
	return rec.meta, true
}

// SetProcessing moves a pending job to processing. Terminal jobs are left
// untouched.
func (s *Store) SetProcessing(jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[jobID]
	if !ok || rec.job.Status.IsTerminal() {
		return
	}
	rec.job.Status = types.StatusProcessing
}

// SetProgress raises a job's progress hint. Values below the current one
// and updates to terminal jobs are ignored, keeping progress monotonic.
func (s *Store) SetProgress(jobID string, progress float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[jobID]
	if !ok || rec.job.Status.IsTerminal() || progress < rec.job.Progress {
		return
	}
	rec.job.Progress = progress
}

// Complete stores the result and moves the job to its completed terminal
// state. Returns false if the job was already terminal.
func (s *Store) Complete(jobID string, result *types.TranscriptionResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[jobID]
	if !ok || rec.job.Status.IsTerminal() {
		return false
	}

	now := time.Now().UTC()
	rec.job.Status = types.StatusCompleted
	rec.job.Result = result
	rec.job.CompletedAt = &now
	rec.job.Progress = 1.0
	return true
}

// Fail stores the error description and moves the job to its failed
// terminal state, freezing progress at its last value. Returns false if the
// job was already terminal.
func (s *Store) Fail(jobID, errMsg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[jobID]
	if !ok || rec.job.Status.IsTerminal() {
		return false
	}

	now := time.Now().UTC()
	rec.job.Status = types.StatusFailed
	rec.job.Error = errMsg
	rec.job.CompletedAt = &now
	return true
}

// FailActive fails every pending or processing job with the given reason.
// Used at shutdown so pollers get a definitive terminal state. Returns the
// number of jobs swept.
func (s *Store) FailActive(errMsg string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	swept := 0
	for _, rec := range s.records {
		if rec.job.Status.IsTerminal() {
			continue
		}
		rec.job.Status = types.StatusFailed
		rec.job.Error = errMsg
		rec.job.CompletedAt = &now
		swept++
	}
	return swept
}

// ActiveCount reports how many jobs are pending or processing.
func (s *Store) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, rec := range s.records {
		if !rec.job.Status.IsTerminal() {
			count++
		}
	}
	return count
}
