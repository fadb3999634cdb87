package version

import "strings"

// Set at build time with -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// EnsureVPrefix adds a "v" prefix if missing; golang.org/x/mod/semver requires it.
func EnsureVPrefix(s string) string {
	if strings.HasPrefix(s, "v") {
		return s
	}
	return "v" + s
}
