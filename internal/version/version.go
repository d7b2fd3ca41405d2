// Package version provides build-time version information.
//
// Variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/rickgao/ledgerx-client/internal/version.Version=0.3.0 \
//	                   -X github.com/rickgao/ledgerx-client/internal/version.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/ledgerx
package version

// Build-time variables (set via ldflags)
var (
	// Version is the semantic version (e.g., "0.3.0")
	Version = "dev"

	// Commit is the git commit hash (short form)
	Commit = "unknown"
)

// String returns a formatted version string.
func String() string {
	return Version + " (" + Commit + ")"
}

// UserAgent returns the User-Agent sent with every API request.
func UserAgent() string {
	return "ledgerx-client/" + Version
}
