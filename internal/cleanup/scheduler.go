package cleanup

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// workDirPrefix matches the per-job working areas the workers create.
const workDirPrefix = "transcription_"

// Scheduler periodically sweeps orphaned per-job working directories out of
// the temp area. Workers remove their own directories on every exit path;
// the sweeper only catches leftovers from crashed processes.
type Scheduler struct {
	tempDir  string
	interval time.Duration
	maxAge   time.Duration
	stopChan chan struct{}
}

// NewScheduler creates a cleanup scheduler for the given temp directory.
func NewScheduler(tempDir string, interval, maxAge time.Duration) *Scheduler {
	return &Scheduler{
		tempDir:  tempDir,
		interval: interval,
		maxAge:   maxAge,
		stopChan: make(chan struct{}),
	}
}

// Start runs an initial sweep and begins periodic cleanup.
func (s *Scheduler) Start() {
	s.sweep()

	ticker := time.NewTicker(s.interval)
	go func() {
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stopChan:
				ticker.Stop()
				return
			}
		}
	}()

	logrus.Infof("Cleanup scheduler started (interval: %s, max age: %s)", s.interval, s.maxAge)
}

// Stop stops the cleanup scheduler.
func (s *Scheduler) Stop() {
	close(s.stopChan)
}

// sweep removes working directories older than maxAge.
func (s *Scheduler) sweep() {
	entries, err := os.ReadDir(s.tempDir)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.Warnf("Cleanup: cannot read temp dir %s: %v", s.tempDir, err)
		}
		return
	}

	now := time.Now()
	removed := 0

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), workDirPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) <= s.maxAge {
			continue
		}

		dir := filepath.Join(s.tempDir, entry.Name())
		if err := os.RemoveAll(dir); err != nil {
			logrus.Warnf("Cleanup: failed to remove %s: %v", dir, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		logrus.Infof("Cleanup: removed %d orphaned working directories", removed)
	}
}

// EnsureTempDirExists creates the temp directory if it doesn't exist.
func EnsureTempDirExists(tempDir string) error {
	return os.MkdirAll(tempDir, 0755)
}
