// Package version holds build information injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/momorph/pwdline/internal/version.Version=v0.2.0"
package version

var (
	// Version is the released version, or "dev" for local builds
	Version = "dev"
	// CommitSHA is the git commit the binary was built from
	CommitSHA = "unknown"
	// BuildDate is the build timestamp in RFC 3339
	BuildDate = "unknown"
)
