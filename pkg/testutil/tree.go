package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/paths"
)

// Tree is an install directory and a home directory under one temp root
type Tree struct {
	t          *testing.T
	InstallDir string
	HomeDir    string
}

// NewTree creates empty install and home directories
func NewTree(t *testing.T) *Tree {
	t.Helper()

	root := t.TempDir()
	return &Tree{
		t:          t,
		InstallDir: CreateDir(t, root, "dotfiles"),
		HomeDir:    CreateDir(t, root, "home"),
	}
}

// WithShared adds the shell files every profile links
func (tr *Tree) WithShared() *Tree {
	tr.t.Helper()

	CreateFile(tr.t, tr.InstallDir, ".zshrc", "export EDITOR=vim\n")
	CreateFile(tr.t, tr.InstallDir, ".zsh_history", ": 1700000000:0;ls\n")
	return tr
}

// WithProfile adds a profile directory holding .aws/ and .gitconfig
func (tr *Tree) WithProfile(name string) *Tree {
	tr.t.Helper()

	profileDir := CreateDir(tr.t, tr.InstallDir, name)
	CreateFile(tr.t, profileDir, filepath.Join(".aws", "credentials"), "[default]\n")
	CreateFile(tr.t, profileDir, ".gitconfig", "[user]\n\tname = "+name+"\n")
	return tr
}

// Paths returns the tree's roots as resolved paths
func (tr *Tree) Paths() *paths.Paths {
	tr.t.Helper()

	p, err := paths.New(tr.InstallDir, tr.HomeDir)
	if err != nil {
		tr.t.Fatalf("Failed to build paths for tree: %v", err)
	}
	return p
}

// Install returns a path inside the install directory
func (tr *Tree) Install(elem ...string) string {
	return filepath.Join(append([]string{tr.InstallDir}, elem...)...)
}

// Home returns a path inside the home directory
func (tr *Tree) Home(elem ...string) string {
	return filepath.Join(append([]string{tr.HomeDir}, elem...)...)
}
