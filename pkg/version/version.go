// Package version holds the build version string.
package version

// Version is the focalpick release version, overridden at build time via
// -ldflags "-X focalpick/pkg/version.Version=...".
var Version = "0.1.0"
