// Package version carries the build version, overridden at link time with
// -ldflags "-X ...".
package version

var Version = "dev"
