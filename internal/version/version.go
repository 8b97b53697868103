// Package version exposes build information injected at link time.
package version

var (
	// Version is the semantic version of the build.
	//
	//nolint:gochecknoglobals // Set with -ldflags "-X".
	Version = "0.1.0"

	// Commit is the VCS revision of the build.
	//
	//nolint:gochecknoglobals // Set with -ldflags "-X".
	Commit = "none"

	// BuildTime is the time the binary was built.
	//
	//nolint:gochecknoglobals // Set with -ldflags "-X".
	BuildTime = "unknown"
)

// Short returns the version number only.
func Short() string {
	return Version
}

// Full returns the version, commit and build time.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
