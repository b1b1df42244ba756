package filesystem

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// New creates a filesystem backed by the given afero.Fs.
//
// Backends without afero.Linker (MemMapFs) get simulated symlinks: an
// exclusively created file holding the link target. That keeps the
// fs.ErrExist behaviour of occupied targets, but MemMapFs creates missing
// parent directories on the fly, so a link under a missing directory
// succeeds where the OS backend fails. Such backends are for tests only.
func New(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

// NewOS creates a filesystem backed by the operating system
func NewOS() types.FS {
	return New(afero.NewOsFs())
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	dirEntries := make([]fs.DirEntry, len(entries))
	for i, entry := range entries {
		dirEntries[i] = fs.FileInfoToDirEntry(entry)
	}
	return dirEntries, nil
}

func (a *aferoFS) Symlink(oldname, newname string) error {
	if linker, ok := a.fs.(afero.Linker); ok {
		return linker.SymlinkIfPossible(oldname, newname)
	}

	// Simulated: an exclusively created file whose content is the target
	f, err := a.fs.OpenFile(newname, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0777)
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: unwrapPathError(err)}
	}
	if _, err := f.WriteString(oldname); err != nil {
		_ = f.Close()
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: err}
	}
	return f.Close()
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

// unwrapPathError strips the *fs.PathError wrapper so the LinkError reads
// like the one os.Symlink produces.
func unwrapPathError(err error) error {
	if pathErr, ok := err.(*fs.PathError); ok {
		return pathErr.Err
	}
	return err
}
