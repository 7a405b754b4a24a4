package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func nextEvent(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case name := <-w.Events:
		return name
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for a watcher event")
	}
	return ""
}

func TestWatcherReportsRelativeNames(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "scripts"), 0o755); err != nil {
		t.Fatalf("mkdir scripts: %v", err)
	}

	w, err := NewWatcherAt(dir)
	if err != nil {
		t.Fatalf("NewWatcherAt failed: %v", err)
	}
	defer w.Close()

	// Create and write land within the debounce window and collapse to one event.
	if err := os.WriteFile(filepath.Join(dir, "keyboard.yaml"), []byte("name: keyboard\n"), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	if got := nextEvent(t, w); got != "keyboard.yaml" {
		t.Fatalf("expected keyboard.yaml, got %q", got)
	}

	// Files that are neither specs nor scripts are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "scripts", "waves.tengo"), []byte("y := 1\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if got := nextEvent(t, w); got != "scripts/waves.tengo" {
		t.Fatalf("expected scripts/waves.tengo, got %q", got)
	}
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcherAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcherAt failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	select {
	case _, ok := <-w.Events:
		if ok {
			t.Fatalf("expected Events closed with nothing pending")
		}
	case <-time.After(time.Second):
		t.Fatalf("Events not closed after Close")
	}
	if _, ok := <-w.Errors; ok {
		t.Fatalf("expected Errors closed")
	}
}

func TestNewWatcherAtMissingDir(t *testing.T) {
	if _, err := NewWatcherAt(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for a missing directory")
	}
}
