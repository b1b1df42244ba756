// Package filesystem provides filesystem implementations for dotlink.
//
// All implementations sit on top of afero. The OS filesystem gets real
// symlinks through afero's optional Linker and Lstater
// interfaces. Backends without symlink support (afero.MemMapFs in tests)
// store a symlink as a file holding the target text, created exclusively so
// an occupied path still fails with fs.ErrExist.
package filesystem
