// Package types defines the core types and interfaces used throughout dotlink:
// the LinkSpec a run is planned from, the LinkResult each link attempt
// produces and the FS interface the linker works against.
package types
