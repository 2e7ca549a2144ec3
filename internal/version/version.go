package version

// These variables are set at build time using -ldflags
// Example: go build -ldflags "-X github.com/alexiusacademia/ssbeam/internal/version.Version=1.0.0"
var (
	// Version is the semantic version of the application
	Version = "0.1.0"

	// BuildTime is the time the binary was built (set via ldflags)
	BuildTime = "unknown"

	// GitCommit is the git commit hash (set via ldflags)
	GitCommit = "unknown"

	// Author of the application
	Author = "Alexius Academia"

	// Year of release
	Year = "2025"
)

// Info is the one-line version string, e.g. "ssbeam v0.1.0 (abc123, built unknown)"
func Info() string {
	return "ssbeam v" + Version + " (" + GitCommit + ", built " + BuildTime + ")"
}
