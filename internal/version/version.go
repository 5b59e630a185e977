// Package version records the build version of the server.
package version

// Version is the application version. Overridable at build time via
// -ldflags "-X .../internal/version.Version=v1.2.3".
var Version = "dev"
