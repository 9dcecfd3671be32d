package version

import (
	"encoding/json"
	"regexp"
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_FollowsSemverOrDev(t *testing.T) {
	if Version == "dev" {
		t.Log("Version is 'dev' (development build without ldflags)")
		return
	}
	semverRegex := regexp.MustCompile(`^v?\d+\.\d+\.\d+(-[a-zA-Z0-9.]+)?$`)
	require.True(t, semverRegex.MatchString(Version), "Version should follow semver format, got: %s", Version)
}

func TestResolve(t *testing.T) {
	vcs := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		{Key: "vcs.modified", Value: "true"},
	}

	tests := []struct {
		name         string
		commit, date string
		settings     []debug.BuildSetting
		wantCommit   string
		wantDate     string
		wantModified bool
	}{
		{"nothing embedded", "", "", nil, "unknown", "unknown", false},
		{"vcs stamp", "", "", vcs, "0123456789ab", "2026-10-01T12:00:00Z", true},
		{"ldflags win", "abc1234", "2026-01-01", vcs, "abc1234", "2026-01-01", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bi := resolve(tt.commit, tt.date, tt.settings)

			assert.Equal(t, tt.wantCommit, bi.Commit)
			assert.Equal(t, tt.wantDate, bi.Date)
			assert.Equal(t, tt.wantModified, bi.Modified)
			assert.Equal(t, EngineVersion, bi.Engine)
		})
	}
}

func TestString_ReturnsFormattedString(t *testing.T) {
	// When: calling String()
	str := String()

	// Then: it names the program, the engine release and the build fields
	assert.Contains(t, str, "uecheck "+Version+" for UE 4.27")
	assert.Contains(t, str, "commit: "+GetInfo().Commit)
	assert.Contains(t, str, "go: "+runtime.Version())
}

func TestShort_ReturnsVersionOnly(t *testing.T) {
	assert.Equal(t, Version, Short())
}

func TestGetInfo_MarshalsAllFields(t *testing.T) {
	data, err := json.Marshal(GetInfo())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Version, decoded["version"])
	assert.Equal(t, runtime.GOOS, decoded["os"])
	assert.Equal(t, runtime.GOARCH, decoded["arch"])
	assert.Equal(t, EngineVersion, decoded["engine"])
	for _, key := range []string{"commit", "date", "modified", "go_version"} {
		assert.Contains(t, decoded, key)
	}
}
