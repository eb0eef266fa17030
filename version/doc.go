// Package version exposes build version information.
//
// Version and commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/viprogramm/audio11eleven/version.Version=1.0.0"
//
// When unset, the commit is recovered from the embedded VCS build info.
package version
