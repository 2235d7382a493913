package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Info holds build version information
type Info struct {
	Version   string
	Commit    string
	GoVersion string
}

// Get returns the version information for the current binary
func Get() Info {
	info := Info{
		Version:   Version,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range bi.Settings {
			if setting.Key == "vcs.revision" {
				info.Commit = setting.Value
				if len(info.Commit) > 12 {
					info.Commit = info.Commit[:12]
				}
			}
		}
	}

	return info
}

func (i Info) String() string {
	if i.Commit != "" {
		return fmt.Sprintf("blender2gazebo %s (%s, %s)", i.Version, i.Commit, i.GoVersion)
	}
	return fmt.Sprintf("blender2gazebo %s (%s)", i.Version, i.GoVersion)
}
