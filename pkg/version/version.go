package version

import "github.com/blang/semver"

// Version is the version of the current build. Release builds overwrite it
// with -ldflags "-X github.com/MustafaAamir/JITxpr/pkg/version.Version=...".
var Version = "0.1.0"

// Semver returns Version parsed as a semantic version. It fails hard when
// the build was stamped with something unparseable, which is the desired
// behavior: a bad stamp should never ship quietly.
func Semver() semver.Version {
	return semver.MustParse(Version)
}
