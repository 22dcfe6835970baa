package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"prefabs/player.yaml", "spec"},
		{"prefabs/x.YML", "spec"},
		{"prefabs/scripts/enemy.tengo", "script"},
		{"levels/contour.json", "level"},
		{"prefabs/notes.txt", ""},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			if got := Classify(tc.path); got != tc.want {
				t.Fatalf("Classify(%q) = %q, want %q", tc.path, got, tc.want)
			}
			if IsWatchedFile(tc.path) != (tc.want != "") {
				t.Fatalf("IsWatchedFile(%q) disagrees with Classify", tc.path)
			}
		})
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	target := filepath.Join(dir, "spawner.yaml")
	if err := os.WriteFile(target, []byte("base_period: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "spawner.yaml" {
			t.Fatalf("unexpected event for %s", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a watch event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatal("expected Events closed after Close")
	}
}
