// Package version provides build-time version information.
//
// Values are injected via ldflags:
//
//	go build -ldflags "
//	  -X github.com/toukei-tech/toukei/internal/version.Version=x.y.z
//	  -X github.com/toukei-tech/toukei/internal/version.Commit=$(git rev-parse HEAD)
//	  -X github.com/toukei-tech/toukei/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)
//	"
package version

import "runtime/debug"

// Build-time variables injected via ldflags.
var (
	Version = "0.0.0"
	Commit  = "unknown"
	Date    = "unknown"
)

func init() {
	if Commit != "unknown" {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			Commit = setting.Value
		case "vcs.time":
			Date = setting.Value
		}
	}
}
