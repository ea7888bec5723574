// Package version carries the build version stamped in at link time.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Current is overridden with -ldflags "-X togetherly/internal/shared/version.Current=v1.2.3".
var Current = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	if version == "" {
		return ""
	}
	version = strings.TrimSpace(version)
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether v is a tagged semver release rather than a dev
// or prerelease build.
func IsRelease(v string) bool {
	n := Normalize(v)
	return semver.IsValid(n) && semver.Prerelease(n) == ""
}

// String returns Current in canonical form, or "dev" for untagged builds.
func String() string {
	if n := Normalize(Current); semver.IsValid(n) {
		return semver.Canonical(n)
	}
	return "dev"
}
