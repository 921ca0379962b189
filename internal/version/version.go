// Package version carries build information injected at link time.
package version

import "fmt"

// Build information set by ldflags, e.g.
// -X github.com/arthur-debert/bombuilder/internal/version.Version=1.2.0
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info renders the build information for the version command.
func Info(app string) string {
	return fmt.Sprintf("%s version %s\n  commit: %s\n  built:  %s\n", app, Version, Commit, Date)
}
