// Package version holds the release version of the drills commands.
package version

// Version is overridden at build time with -ldflags "-X".
var Version = "0.1.0"

// String returns the version for display.
func String() string {
	return Version
}
