package constant

// GOOS values that need a platform-specific opener.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
