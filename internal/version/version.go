package version

import (
	"fmt"
	"runtime"
)

// Set at build time via -ldflags "-X github.com/longkey1/playground/internal/version.Version=..."
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildTime = "unknown"
)

// Short returns only the version number
func Short() string {
	return Version
}

// Info returns the full version information
func Info() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuilt: %s\nGo version: %s",
		Version, CommitSHA, BuildTime, runtime.Version())
}
