// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Upstream API - these keys locate the Streamio account and narrow the catalog.
const (
	APIEndpoint = "api.endpoint"
	APIUsername = "api.username"
	APIPassword = "api.password"
	APITags     = "api.tags"
)

// Gallery - these keys bound and order the assembled result set.
const (
	GalleryTotal     = "gallery.total"
	GalleryBatch     = "gallery.batch"
	GallerySortOrder = "gallery.sort_order"
)

// Network - these keys tune the shared HTTP client.
const (
	NetworkTimeout           = "network.timeout"
	NetworkRequestsPerSecond = "network.requests_per_second"
)

// Search Interaction - these keys define suggestion behaviour for tag filters.
const (
	SearchShowTagSuggestions = "search.show_tag_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive gallery's styling.
const (
	TUIItemSpacing = "tui.item_spacing"
	TUIShowURLs    = "tui.show_urls"
)

// Media Playback - the external player that receives the selected stream.
const (
	Player = "player.default"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
