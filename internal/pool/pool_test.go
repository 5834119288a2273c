package pool_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"bindery/internal/pool"
)

func TestTakeListsFilesOnly(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.mp4"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	snap, err := pool.Take(dir)
	if err != nil {
		t.Fatalf("Take returned error: %v", err)
	}
	if snap.Dir() != dir {
		t.Fatalf("unexpected dir: %q", snap.Dir())
	}
	want := []string{"a.mp4", "b.pdf"}
	if !reflect.DeepEqual(snap.Names(), want) {
		t.Fatalf("unexpected names: %v", snap.Names())
	}
	if snap.Len() != 2 {
		t.Fatalf("unexpected len: %d", snap.Len())
	}
}

func TestTakeMissingDirectory(t *testing.T) {
	if _, err := pool.Take(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
