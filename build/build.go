// Package build reports the module and VCS metadata the Go toolchain embeds
// in every binary it builds.
package build

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Info is the subset of debug.BuildInfo that identifies a build.
type Info struct {
	Path         string            `json:"path"                  yaml:"path"`
	Version      string            `json:"version"               yaml:"version"`
	GoVersion    string            `json:"go_version"            yaml:"go_version"`   //nolint:tagliatelle
	GitCommit    string            `json:"git_commit,omitempty"  yaml:"git_commit"`   //nolint:tagliatelle
	GitDate      string            `json:"git_date,omitempty"    yaml:"git_date"`     //nolint:tagliatelle
	Modified     bool              `json:"modified"              yaml:"modified"`
	Dependencies map[string]string `json:"dependencies,omitempty" yaml:"dependencies"`
}

// Read returns the build information of the running binary. It returns
// (nil, false) when the binary was built without module support.
func Read() (*Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, false
	}

	return FromBuildInfo(bi), true
}

// FromBuildInfo extracts Info from bi. Replaced dependencies report the
// version of their replacement.
func FromBuildInfo(bi *debug.BuildInfo) *Info {
	info := &Info{
		Path:         bi.Main.Path,
		Version:      bi.Main.Version,
		GoVersion:    bi.GoVersion,
		Dependencies: make(map[string]string, len(bi.Deps)),
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.GitCommit = setting.Value
		case "vcs.time":
			info.GitDate = setting.Value
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}

	for _, dep := range bi.Deps {
		mod := dep
		if dep.Replace != nil {
			mod = dep.Replace
		}

		info.Dependencies[dep.Path] = mod.Version
	}

	return info
}

func (i *Info) String() string {
	var sb strings.Builder

	_, _ = fmt.Fprintf(&sb, "%s %s %s", i.Path, i.Version, i.GoVersion)

	if i.GitCommit != "" {
		commit := i.GitCommit
		if len(commit) > 12 { //nolint:mnd
			commit = commit[:12]
		}

		_, _ = fmt.Fprintf(&sb, " commit %s", commit)

		if i.Modified {
			sb.WriteString("+dirty")
		}
	}

	return sb.String()
}
