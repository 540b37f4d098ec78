// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report which build of cppgen is running for --version.
package version

import (
	"runtime/debug"
)

const (
	fallback      = "dev"
	develVersion  = "(devel)"
	shortRevision = 7
)

// GetVersion returns the module version for `go install`ed builds, otherwise
// the short VCS revision (with " (dirty)" for modified trees), otherwise "dev".
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fallback
	}
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != develVersion {
		return v
	}

	settings := make(map[string]string, len(info.Settings))
	for _, setting := range info.Settings {
		settings[setting.Key] = setting.Value
	}
	revision := settings["vcs.revision"]
	if revision == "" {
		return fallback
	}
	if len(revision) > shortRevision {
		revision = revision[:shortRevision]
	}
	if settings["vcs.modified"] == "true" {
		return revision + " (dirty)"
	}
	return revision
}
