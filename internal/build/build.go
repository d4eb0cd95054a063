// Package build holds build-time information about the stamp binary.
package build

// Version is the tool version reported by the version command and folded
// into every environment key. It defaults to "dev" and is overwritten by
// linker flags in release builds.
var Version = "dev"
