package cleanup

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestSweepRemovesStaleWorkDirs verifies old working directories go and
// fresh or unrelated entries stay.
func TestSweepRemovesStaleWorkDirs(t *testing.T) {
	tempDir := t.TempDir()

	stale := filepath.Join(tempDir, "transcription_old")
	fresh := filepath.Join(tempDir, "transcription_new")
	other := filepath.Join(tempDir, "unrelated")
	for _, dir := range []string{stale, fresh, other} {
		if err := os.Mkdir(dir, 0755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	past := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(stale, past, past); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if err := os.Chtimes(other, past, past); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	s := NewScheduler(tempDir, time.Hour, 24*time.Hour)
	s.sweep()

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatal("stale working dir not removed")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Fatal("fresh working dir removed")
	}
	if _, err := os.Stat(other); err != nil {
		t.Fatal("unrelated dir removed")
	}
}

// TestSweepMissingTempDir verifies a missing temp dir is not an error.
func TestSweepMissingTempDir(t *testing.T) {
	s := NewScheduler(filepath.Join(t.TempDir(), "absent"), time.Hour, time.Hour)
	s.sweep()
}

// TestEnsureTempDirExists verifies directory creation.
func TestEnsureTempDirExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureTempDirExists(dir); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("dir not created: %v", err)
	}
}
