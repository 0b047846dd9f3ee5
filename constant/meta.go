// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Streamio is the canonical application identifier used for filesystem paths and CLI branding.
	Streamio = "streamio"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the HTTP User-Agent sent with every upstream API request.
	UserAgent = Streamio + "-cli/" + Version

	// DefaultEndpoint is the Streamio video listing endpoint.
	DefaultEndpoint = "https://streamio.com/api/v1/videos.json"

	// Repository is the GitHub slug used for release discovery.
	Repository = "streamio-cli/streamio"
)

// Build metadata, injected with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
