// Package misc holds build identity helpers shared by every binary.
package misc

import "runtime/debug"

// appVersion is set by the linker for release builds.
var appVersion = "development"

func GetAppName() string {
	return "veneer"
}

func GetVersion() string {
	return appVersion
}

// GetGitHash returns the VCS revision recorded in the build info.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
