// Package config holds the link table dotlink works from.
//
// The table is an embedded TOML document loaded through koanf. It is part
// of the binary and is not read from the user's filesystem: the set of
// links a run creates is fixed at build time.
package config
