// Package testutil provides utilities for testing dotlink components.
//
// Key components:
//   - Tree: a throwaway install directory and home directory on disk,
//     with helpers to populate shared files and profiles
//   - NewTestFS: an in-memory types.FS, with seeding helpers, for tests that
//     need no real symlinks
//   - File and symlink helpers that fail the test on error
//
// Symlink semantics (dangling links, occupied targets, missing parents)
// should be tested against Tree. The in-memory filesystem only simulates
// symlinks.
package testutil
