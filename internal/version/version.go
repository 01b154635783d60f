// Package version holds the wastewise version.
package version

// Version is the version of wastewise.
const Version = "0.1.0"
