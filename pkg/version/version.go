// Package version reports the build identity of the running binary.
package version

import "runtime/debug"

// AppName appears in log lines and the root endpoint payload.
const AppName = "plcforge"

// commitOverride can be injected with -ldflags for builds where the VCS
// metadata is stripped (e.g. container builds from a source tarball).
var commitOverride string

// GitCommit is the short commit hash of the build, "dev" when unknown.
// A "+" suffix marks a build from a dirty working tree.
var GitCommit = resolveCommit()

// Full returns "plcforge/<commit>" for logs and handshake strings.
func Full() string {
	return AppName + "/" + GitCommit
}

func resolveCommit() string {
	if commitOverride != "" {
		return short(commitOverride)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	commit, dirty := "", false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if commit == "" {
		return "dev"
	}
	if dirty {
		return short(commit) + "+"
	}
	return short(commit)
}

func short(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
