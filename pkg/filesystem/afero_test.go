package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS_Symlink(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()

	source := filepath.Join(tmpDir, "source.txt")
	require.NoError(t, os.WriteFile(source, []byte("hello"), 0644))

	link := filepath.Join(tmpDir, "link.txt")
	require.NoError(t, fsys.Symlink(source, link))

	target, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, source, target)

	info, err := fsys.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "Lstat should not follow the link")

	info, err = fsys.Stat(link)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular(), "Stat follows the link")
}

func TestNewOS_SymlinkExisting(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()

	occupied := filepath.Join(tmpDir, "occupied")
	require.NoError(t, os.WriteFile(occupied, []byte("keep me"), 0644))

	err := fsys.Symlink(filepath.Join(tmpDir, "anything"), occupied)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrExist)

	content, err := os.ReadFile(occupied)
	require.NoError(t, err)
	assert.Equal(t, []byte("keep me"), content, "existing file must not be modified")
}

func TestNewOS_SymlinkDanglingSource(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()

	link := filepath.Join(tmpDir, "dangling")
	require.NoError(t, fsys.Symlink(filepath.Join(tmpDir, "missing"), link))

	_, err := fsys.Stat(link)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	_, err = fsys.Lstat(link)
	assert.NoError(t, err)
}

func TestNewOS_SymlinkMissingParent(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()

	err := fsys.Symlink(filepath.Join(tmpDir, "src"), filepath.Join(tmpDir, "nope", "link"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, fs.ErrExist)
}

func TestNew_SimulatedSymlink(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/home/u", 0755))
	fsys := New(mem)

	require.NoError(t, fsys.Symlink("/opt/dotfiles/.zshrc", "/home/u/.zshrc"))

	content, err := afero.ReadFile(mem, "/home/u/.zshrc")
	require.NoError(t, err)
	assert.Equal(t, "/opt/dotfiles/.zshrc", string(content))

	_, err = fsys.Lstat("/home/u/.zshrc")
	assert.NoError(t, err)

	err = fsys.Symlink("/elsewhere", "/home/u/.zshrc")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrExist)

	var linkErr *os.LinkError
	require.ErrorAs(t, err, &linkErr)
	assert.Equal(t, "/home/u/.zshrc", linkErr.New)

	content, err = afero.ReadFile(mem, "/home/u/.zshrc")
	require.NoError(t, err)
	assert.Equal(t, "/opt/dotfiles/.zshrc", string(content), "occupied target keeps its original content")
}

func TestNew_SimulatedSymlinkCreatesParents(t *testing.T) {
	fsys := New(afero.NewMemMapFs())

	// Unlike the OS backend, a missing parent does not fail
	require.NoError(t, fsys.Symlink("/opt/dotfiles/.aws", "/nohome/.aws"))

	_, err := fsys.Lstat("/nohome/.aws")
	assert.NoError(t, err)
}

func TestReadDir(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/opt/dotfiles/work", 0755))
	require.NoError(t, mem.MkdirAll("/opt/dotfiles/home", 0755))
	require.NoError(t, afero.WriteFile(mem, "/opt/dotfiles/.zshrc", []byte("x"), 0644))

	entries, err := New(mem).ReadDir("/opt/dotfiles")
	require.NoError(t, err)

	names := map[string]bool{}
	for _, e := range entries {
		names[e.Name()] = e.IsDir()
	}
	assert.Equal(t, map[string]bool{".zshrc": false, "home": true, "work": true}, names)
}
