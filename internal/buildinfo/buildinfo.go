// Package buildinfo carries version stamps injected by the release build.
package buildinfo

import "time"

// Set via -ldflags "-X github.com/barangayan/brgyems/internal/buildinfo.CommitHash=..."
var (
	Version    = "dev"
	BuildTime  string // when the binary was compiled
	CommitTime string // last git commit time
	CommitHash string // short git commit hash
)

// StartTime is recorded when the process starts
var StartTime = time.Now().UTC().Format(time.RFC3339)

// Fields returns the stamps as a flat map for logs and version output
func Fields() map[string]string {
	return map[string]string{
		"version":     Version,
		"commit":      CommitHash,
		"commit_time": CommitTime,
		"build_time":  BuildTime,
	}
}
