// Package build describes the binary that is running. Release builds inject
// a JSON document with -ldflags; other builds fall back to what the Go
// toolchain embedded in the binary.
//
//	go build -ldflags "-X main.buildInfo=$(cat build.json)" ./cmd/quicksort
package build

import (
	"encoding/json"
	"log/slog"
	"runtime/debug"
)

// Info contains build metadata.
type Info struct {
	GitCommit    string            `json:"git_commit"` //nolint:tagliatelle
	GitBranch    string            `json:"git_branch"` //nolint:tagliatelle
	GitDate      string            `json:"git_date"`   //nolint:tagliatelle
	BuildTime    string            `json:"build_time"` //nolint:tagliatelle
	BuildHost    string            `json:"build_host"` //nolint:tagliatelle
	BuildUser    string            `json:"build_user"` //nolint:tagliatelle
	GoVersion    string            `json:"go_version"` //nolint:tagliatelle
	Dependencies map[string]string `json:"dependencies"`
}

// Parse deserializes a JSON string into build Info.
// Returns (nil, false) if the input is empty, "{}", or fails to parse.
func Parse(js string) (*Info, bool) {
	if len(js) == 0 || js == "{}" {
		return nil, false
	}

	var info Info

	if err := json.Unmarshal([]byte(js), &info); err != nil {
		slog.Warn("Failed to parse build info from JSON",
			"data", js,
			"error", err)

		return nil, false
	}

	return &info, true
}

// FromRuntime builds Info from the metadata the Go toolchain embeds in the
// binary. Returns (nil, false) when the binary carries none.
func FromRuntime() (*Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, false
	}

	return fromBuildInfo(bi), true
}

func fromBuildInfo(bi *debug.BuildInfo) *Info {
	info := &Info{
		GoVersion:    bi.GoVersion,
		Dependencies: make(map[string]string, len(bi.Deps)),
	}

	for _, dep := range bi.Deps {
		info.Dependencies[dep.Path] = dep.Version
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.GitCommit = setting.Value
		case "vcs.time":
			info.GitDate = setting.Value
		}
	}

	return info
}

// Load returns the injected Info when js parses, and the runtime's otherwise.
func Load(js string) (*Info, bool) {
	if info, ok := Parse(js); ok {
		return info, true
	}

	return FromRuntime()
}

// LogValue implements slog.LogValuer. Dependencies are left out.
func (i *Info) LogValue() slog.Value {
	if i == nil {
		return slog.StringValue("unknown")
	}

	return slog.GroupValue(
		slog.String("git_commit", i.GitCommit),
		slog.String("git_branch", i.GitBranch),
		slog.String("build_time", i.BuildTime),
		slog.String("go_version", i.GoVersion),
	)
}
