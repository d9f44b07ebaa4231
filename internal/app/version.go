package app

import "fmt"

// Build metadata, injected with ldflags:
//
//	go build -ldflags "-X github.com/okeanid/glossarion/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for startup log lines.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
