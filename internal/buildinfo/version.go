// Package buildinfo exposes the version the binary was built from.
package buildinfo

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version information injected by ldflags during build.
var (
	// Version is the current version (e.g., "1.0.0")
	Version = "dev"
	// Commit is the git commit hash
	Commit = "unknown"
	// BuildDate is the build timestamp
	BuildDate = "unknown"
)

// Semver parses Version. Development builds report 0.0.0-dev.
func Semver() *semver.Version {
	v, err := semver.NewVersion(strings.TrimPrefix(Version, "v"))
	if err != nil {
		return semver.MustParse("0.0.0-dev")
	}
	return v
}

// String formats the version line printed by --version.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Semver(), Commit, BuildDate)
}
