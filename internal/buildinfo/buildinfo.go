// Package buildinfo derives a version string from the VCS stamp the Go
// toolchain embeds in the binary.
package buildinfo

import "runtime/debug"

const devVersion = "dev"

// Version returns the short commit hash, suffixed with -dirty for modified
// trees, or "dev" when no VCS information is available.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return devVersion
	}
	return fromSettings(info.Settings)
}

func fromSettings(settings []debug.BuildSetting) string {
	var revision string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if revision == "" {
		return devVersion
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if dirty {
		return revision + "-dirty"
	}
	return revision
}
