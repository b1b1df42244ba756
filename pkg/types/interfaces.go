package types

import (
	"io/fs"
)

// FS is the filesystem interface required for dotlink operations
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink must fail with an error satisfying errors.Is(err, fs.ErrExist)
	// when newname is already taken.
	Symlink(oldname, newname string) error

	// Lstat does not follow a final symlink where the backend supports it
	Lstat(name string) (fs.FileInfo, error)
}
