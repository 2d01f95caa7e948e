// Package version exposes build metadata for the version command and the
// serve startup log. Values are stamped with -ldflags "-X ..." at release
// build time; the defaults identify an untagged dev build.
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
