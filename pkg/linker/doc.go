// Package linker creates the symlinks for a profile.
//
// A run is a single ordered pass over the link table:
//
//  1. Plan turns the table, the resolved roots and the profile into
//     LinkSpecs. Install-scoped sources come from the install directory,
//     profile-scoped sources from its <profile> subdirectory. Every target is
//     a direct child of the home directory.
//  2. Create attempts one symlink and classifies the outcome as Created,
//     AlreadyExists or Failed. It never removes or replaces anything.
//  3. Run walks the plan in order. An occupied target is reported and
//     skipped; any other failure stops the run. Links made before the
//     failure stay in place.
//
// The source of a link does not have to exist: a missing source gives a
// dangling symlink, as with ln -s.
package linker
