package testutil

import (
	"testing"

	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/spf13/afero"
)

// MemoryFS is an in-memory types.FS with setup helpers
type MemoryFS struct {
	types.FS
	Backing afero.Fs
}

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() *MemoryFS {
	mem := afero.NewMemMapFs()
	return &MemoryFS{FS: filesystem.New(mem), Backing: mem}
}

// Dir creates path and any missing parents
func (m *MemoryFS) Dir(t *testing.T, path string) {
	t.Helper()
	if err := m.Backing.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
}

// File writes content to path
func (m *MemoryFS) File(t *testing.T, path, content string) {
	t.Helper()
	if err := afero.WriteFile(m.Backing, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

// LinkTarget returns the target stored in a simulated symlink
func (m *MemoryFS) LinkTarget(t *testing.T, path string) string {
	t.Helper()
	content, err := afero.ReadFile(m.Backing, path)
	if err != nil {
		t.Fatalf("Failed to read link %s: %v", path, err)
	}
	return string(content)
}
