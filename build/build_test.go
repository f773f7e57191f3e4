package build

import (
	"bytes"
	"log/slog"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidJSON(t *testing.T) {
	t.Parallel()

	js := `{
		"git_commit": "abc123",
		"git_branch": "main",
		"git_date": "2025-10-05",
		"build_time": "2025-10-05T12:00:00Z",
		"build_host": "localhost",
		"build_user": "builder",
		"go_version": "go1.25.5",
		"dependencies": {
			"github.com/example/pkg": "v1.2.3"
		}
	}`

	info, ok := Parse(js)

	require.True(t, ok)
	require.NotNil(t, info)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, "main", info.GitBranch)
	assert.Equal(t, "2025-10-05", info.GitDate)
	assert.Equal(t, "2025-10-05T12:00:00Z", info.BuildTime)
	assert.Equal(t, "localhost", info.BuildHost)
	assert.Equal(t, "builder", info.BuildUser)
	assert.Equal(t, "go1.25.5", info.GoVersion)
	assert.Equal(t, map[string]string{"github.com/example/pkg": "v1.2.3"}, info.Dependencies)
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	for _, js := range []string{"", "{}", "{not json"} {
		info, ok := Parse(js)

		assert.False(t, ok, js)
		assert.Nil(t, info, js)
	}
}

func TestFromBuildInfo(t *testing.T) {
	t.Parallel()

	info := fromBuildInfo(&debug.BuildInfo{
		GoVersion: "go1.25.0",
		Deps: []*debug.Module{
			{Path: "go.uber.org/atomic", Version: "v1.11.0"},
		},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			{Key: "GOOS", Value: "linux"},
		},
	})

	assert.Equal(t, "go1.25.0", info.GoVersion)
	assert.Equal(t, "deadbeef", info.GitCommit)
	assert.Equal(t, "2026-01-02T03:04:05Z", info.GitDate)
	assert.Equal(t, map[string]string{"go.uber.org/atomic": "v1.11.0"}, info.Dependencies)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	info, ok := Load(`{"git_commit": "injected"}`)
	require.True(t, ok)
	assert.Equal(t, "injected", info.GitCommit)

	// Test binaries carry toolchain build info.
	info, ok = Load("")
	require.True(t, ok)
	assert.NotEmpty(t, info.GoVersion)
}

func TestLogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := slog.New(slog.NewTextHandler(&buf, nil))
	log.Info("start", "build", &Info{GitCommit: "abc123", GoVersion: "go1.25.0"})

	assert.Contains(t, buf.String(), "build.git_commit=abc123")
	assert.Contains(t, buf.String(), "build.go_version=go1.25.0")
	assert.NotContains(t, buf.String(), "dependencies")

	var missing *Info
	assert.Equal(t, "unknown", missing.LogValue().String())
}
