// Package version exposes the client build version.
package version

// version is overridden at build time via
// -ldflags "-X github.com/moongate-games/sanctum/pkg/version.version=v1.2.3".
var version = "0.3.0-dev" //nolint:gochecknoglobals // Build-time injection target

// GetVersion returns the client version string.
func GetVersion() string {
	return version
}
