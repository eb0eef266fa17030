package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/viprogramm/audio11eleven/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), logger.NewDefault("test"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	if _, err := NewStore(dir, logger.NewDefault("test")); err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("upload dir not created: %v", err)
	}
}

func TestStore_SaveKeepsExtension(t *testing.T) {
	store := newTestStore(t)

	path, err := store.Save("original.wav", strings.NewReader("RIFF fake"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Ext(path) != ".wav" {
		t.Fatalf("expected .wav extension, got %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "RIFF fake" {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestStore_SaveUniqueNames(t *testing.T) {
	store := newTestStore(t)

	// Two saves in the same millisecond must not collide.
	p1, err := store.Save("a.mp3", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	p2, err := store.Save("a.mp3", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if p1 == p2 {
		t.Fatalf("expected unique paths, both were %s", p1)
	}
}

func TestStore_Remove(t *testing.T) {
	store := newTestStore(t)

	path, err := store.Save("b.ogg", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	store.Remove(path)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err = %v", err)
	}

	// Removing a missing file logs a warning but must not panic.
	store.Remove(path)
}
