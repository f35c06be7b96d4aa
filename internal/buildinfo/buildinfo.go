// Package buildinfo holds version data stamped in with -ldflags -X.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("projectile %s (commit=%s, date=%s)", Version, Commit, Date)
}
