// Package pool snapshots the filenames available for a reconciliation pass.
package pool

import (
	"fmt"
	"os"
)

// Snapshot is a read-only listing of the resource directory, taken once per
// pass. Names are in directory order (lexical) and never mutated.
type Snapshot struct {
	dir   string
	names []string
}

// Take lists the regular files in dir. Subdirectories are ignored; the
// archive layout keeps all assets flat.
func Take(dir string) (*Snapshot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return &Snapshot{dir: dir, names: names}, nil
}

// Dir returns the directory the snapshot was taken from.
func (s *Snapshot) Dir() string { return s.dir }

// Names returns the snapshot's filenames. Callers must not modify the slice.
func (s *Snapshot) Names() []string { return s.names }

// Len returns the number of files in the snapshot.
func (s *Snapshot) Len() int { return len(s.names) }
