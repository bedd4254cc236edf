package app

import "fmt"

// Version, Commit and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/coursereg-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version reported in startup logs and /health.
// Local builds without ldflags report just the version.
func BuildVersion() string {
	if Commit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
