package version

import "fmt"

var (
	// Version is the semantic version of the oid binary.
	Version = "0.1.0"

	// GitCommit is set at build time with -ldflags.
	GitCommit string
)

// FullVersion returns the version with the git commit, if known.
func FullVersion() string {
	if GitCommit == "" {
		return fmt.Sprintf("v%s", Version)
	}
	return fmt.Sprintf("v%s (%s)", Version, GitCommit)
}
