package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// PopulateResources creates the named files under dir, creating the directory
// as needed. Contents are a single placeholder byte; only names matter to the
// resolution engine.
func PopulateResources(t testing.TB, dir string, names ...string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte{0x42}, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}
