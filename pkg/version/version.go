// Package version carries build information injected at link time.
package version

// Values overridden via -ldflags at release build time.
var (
	ver    = "0.0.0-dev"
	commit = ""
	date   = ""
)

// Info describes one build.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// GetInfo returns the build information of the running binary.
func GetInfo() Info {
	return Info{
		Version: ver,
		Commit:  commit,
		Date:    date,
	}
}
