package queue

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/calldoc/transcription-service/internal/types"
)

// shutdownError is stored on jobs swept at process teardown.
const shutdownError = "server shutting down"

// Transcriber is the dispatch entry point the worker calls.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language, recordingID, jobID string) (*types.TranscriptionResult, error)
}

// Notifier delivers a completed result to a callback URL, best-effort.
type Notifier interface {
	Deliver(ctx context.Context, callbackURL string, result *types.TranscriptionResult)
}

// Archiver persists completed transcript metadata. Optional.
type Archiver interface {
	Save(result *types.TranscriptionResult) error
}

// JobStore is the state the supervisor drives. *Store implements it; a
// persistent backend can replace it without touching the worker logic.
type JobStore interface {
	Get(jobID string) (types.Job, bool)
	Meta(jobID string) (Metadata, bool)
	SetProcessing(jobID string)
	SetProgress(jobID string, progress float64)
	Complete(jobID string, result *types.TranscriptionResult) bool
	Fail(jobID, errMsg string) bool
	FailActive(errMsg string) int
}

// Supervisor owns the background workers, one per job, launched
// fire-and-forget at job creation. It tracks them so shutdown can sweep
// outstanding work deterministically.
type Supervisor struct {
	store      JobStore
	dispatcher Transcriber
	notifier   Notifier
	archive    Archiver
	client     *http.Client
	tempDir    string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSupervisor creates a supervisor. archive may be nil; tempDir is the
// parent for per-job working areas (empty means the OS default).
func NewSupervisor(store JobStore, dispatcher Transcriber, notifier Notifier, archive Archiver, tempDir string) *Supervisor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Supervisor{
		store:      store,
		dispatcher: dispatcher,
		notifier:   notifier,
		archive:    archive,
		client:     &http.Client{},
		tempDir:    tempDir,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Launch starts the background worker for one job. It returns immediately.
func (s *Supervisor) Launch(jobID string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logrus.Errorf("Job %s: worker panic: %v\n%s", jobID, r, string(debug.Stack()))
				s.store.Fail(jobID, fmt.Sprintf("worker panic: %v", r))
			}
		}()
		s.process(jobID)
	}()
}

// Shutdown cancels in-flight work, fails every job still pending or
// processing, and waits for the workers to unwind.
func (s *Supervisor) Shutdown() {
	s.cancel()
	if swept := s.store.FailActive(shutdownError); swept > 0 {
		logrus.Warnf("Shutdown: %d active jobs marked failed", swept)
	}
	s.wg.Wait()
}

// process runs the download-transcribe-callback pipeline for one job. The
// working area is removed on every exit path.
func (s *Supervisor) process(jobID string) {
	meta, ok := s.store.Meta(jobID)
	if !ok {
		return
	}

	s.store.SetProcessing(jobID)
	s.store.SetProgress(jobID, 0.1)

	workDir, err := os.MkdirTemp(s.tempDir, "transcription_")
	if err != nil {
		s.failJob(jobID, fmt.Errorf("create working area: %w", err))
		return
	}
	defer os.RemoveAll(workDir)

	logrus.Infof("Job %s: downloading audio from %s", jobID, meta.AudioURL)
	audioPath, err := s.download(meta.AudioURL, workDir)
	if err != nil {
		s.failJob(jobID, err)
		return
	}
	s.store.SetProgress(jobID, 0.2)

	job, _ := s.store.Get(jobID)
	s.store.SetProgress(jobID, 0.4)

	result, err := s.dispatcher.Transcribe(s.ctx, audioPath, meta.Language, job.RecordingID, jobID)
	if err != nil {
		s.failJob(jobID, err)
		return
	}
	s.store.SetProgress(jobID, 0.9)

	if !s.store.Complete(jobID, result) {
		// Already failed, e.g. swept at shutdown.
		return
	}
	logrus.Infof("Job %s: completed (%.1fs processing)", jobID, result.ProcessingTimeSeconds)

	if s.archive != nil {
		if err := s.archive.Save(result); err != nil {
			logrus.Warnf("Job %s: transcript archive save failed: %v", jobID, err)
		}
	}

	if meta.CallbackURL != "" {
		s.notifier.Deliver(s.ctx, meta.CallbackURL, result)
	}
}

// download fetches the source audio into the working area, preserving the
// URL's file extension (.wav when it carries none).
func (s *Supervisor) download(audioURL, workDir string) (string, error) {
	req, err := http.NewRequestWithContext(s.ctx, http.MethodGet, audioURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid audio URL: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download audio: HTTP %d", resp.StatusCode)
	}

	audioPath := filepath.Join(workDir, "audio"+urlExtension(audioURL))
	out, err := os.Create(audioPath)
	if err != nil {
		return "", fmt.Errorf("save downloaded audio: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("write downloaded audio: %w", err)
	}
	return audioPath, nil
}

// failJob converts a pipeline error into the job's failed state. Terminal
// jobs are left untouched.
func (s *Supervisor) failJob(jobID string, err error) {
	logrus.Errorf("Job %s: failed - %v", jobID, err)
	s.store.Fail(jobID, err.Error())
}

// urlExtension extracts the file extension from a URL path, ignoring query
// parameters. Defaults to .wav.
func urlExtension(audioURL string) string {
	u, err := url.Parse(audioURL)
	if err != nil {
		return ".wav"
	}
	if ext := path.Ext(u.Path); ext != "" {
		return ext
	}
	return ".wav"
}
