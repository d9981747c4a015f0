// Package version carries build metadata for the crtmatch commands, set at
// build time via -ldflags "-X".
package version

var (
	// Version is the release version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)
