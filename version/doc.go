// Package version reports build information for the ssemock CLI.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/ssemock/version.Version=1.0.0"
package version
