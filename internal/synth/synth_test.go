package synth

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/uecheck/internal/engine"
	"github.com/Aman-CERP/uecheck/internal/errors"
	"github.com/Aman-CERP/uecheck/internal/hostenv"
)

var (
	windows = hostenv.HostFor("windows")
	linux   = hostenv.HostFor("linux")
)

// newProject creates game.uproject in a temp dir and chdirs there.
func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	func(dir string) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { _ = os.Chdir(wd) })
	}(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "game.uproject"), []byte(`{"FileVersion": 3}`), 0o644))
	return dir
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in   string
		want Platform
	}{
		{"", Android},
		{"Android", Android},
		{"ANDROID", Android},
		{"linux", Linux},
		{" Linux ", Linux},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlatform(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePlatform_Unsupported(t *testing.T) {
	_, err := ParsePlatform("windows")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnsupportedPlatform, errors.GetCode(err))
	assert.Contains(t, err.Error(), "unsupported platform 'windows'")
	assert.Equal(t, errors.ExitInputInvalid, errors.ExitCode(err))
}

func TestNewRequest_ResolvesAndCreatesOutput(t *testing.T) {
	// Given: a project in the working directory and a relative output dir
	dir := newProject(t)

	// When: the platform is omitted
	req, err := NewRequest("game.uproject", "./out", "")

	// Then: Android is selected and paths are absolute
	require.NoError(t, err)
	assert.Equal(t, Android, req.Platform)
	assert.Equal(t, filepath.Join(dir, "game.uproject"), req.ProjectFile)
	assert.Equal(t, filepath.Join(dir, "out"), req.OutputDir)
	assert.DirExists(t, req.OutputDir)
	assert.Equal(t, "game", req.ProjectName())
}

func TestNewRequest_UnsupportedPlatformTouchesNothing(t *testing.T) {
	dir := newProject(t)

	_, err := NewRequest("game.uproject", "./out", "windows")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnsupportedPlatform, errors.GetCode(err))
	assert.NoDirExists(t, filepath.Join(dir, "out"))
}

func TestNewRequest_InputErrors(t *testing.T) {
	dir := newProject(t)
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	tests := []struct {
		name    string
		project string
		out     string
	}{
		{"missing project", "nope.uproject", "out"},
		{"wrong extension", "game.txt", "out"},
		{"empty output", "game.uproject", ""},
		{"output under a file", "game.uproject", filepath.Join(blocker, "out")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRequest(tt.project, tt.out, "Android")

			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInputInvalid, errors.GetCode(err))
		})
	}
}

func TestNewRequest_ReadOnlyOutput(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	// Given: an existing output directory without write permission
	dir := newProject(t)
	out := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(out, 0o555))
	t.Cleanup(func() { _ = os.Chmod(out, 0o755) })

	// When: building a request
	_, err := NewRequest("game.uproject", out, "Android")

	// Then: it is rejected as invalid input
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInputInvalid, errors.GetCode(err))
	assert.Contains(t, err.Error(), "not writable")
}

func TestNewRequest_LeavesNoScratchFile(t *testing.T) {
	newProject(t)

	req, err := NewRequest("game.uproject", "out", "Linux")

	require.NoError(t, err)
	entries, err := os.ReadDir(req.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBuild_AndroidExample(t *testing.T) {
	// Given: game.uproject, ./out, platform omitted
	dir := newProject(t)
	req, err := NewRequest("game.uproject", "./out", "")
	require.NoError(t, err)
	inst := engine.Installation{Root: `C:\UE_4.27`}

	// When: building the command
	cmd := Build(inst, req, windows)

	// Then: the argument list is exactly the Android sequence
	out := filepath.Join(dir, "out")
	assert.Equal(t, []string{
		"BuildCookRun",
		"-project=" + filepath.Join(dir, "game.uproject"),
		"-platform=Android",
		"-targetplatform=Android",
		"-clientconfig=Shipping",
		"-cook", "-compressed", "-iterativecooking", "-allmaps", "-build",
		"-stage", "-pak", "-package", "-archive",
		"-archivedirectory=" + out,
		"-prereqs",
		"-nodebuginfo", "-nocompileeditor", "-NoSubmit", "-utf8output",
	}, cmd.Arguments())
	assert.Equal(t, inst.AutomationTool(), cmd.Executable)
	assert.Contains(t, cmd.Render(windows), `-archivedirectory="`+out+`"`)
	assert.True(t, filepath.IsAbs(cmd.PredictedOutput))
	assert.Equal(t, filepath.Join(out, "Android_ASTC", "game", "Binaries", "Android", "game-Android-Shipping.apk"),
		cmd.PredictedOutput)
}

func TestBuild_LinuxOmitsPrereqs(t *testing.T) {
	newProject(t)
	req, err := NewRequest("game.uproject", "out", "Linux")
	require.NoError(t, err)

	cmd := Build(engine.Installation{Root: "/ue"}, req, linux)

	args := cmd.Arguments()
	assert.NotContains(t, args, "-prereqs")
	assert.Contains(t, args, "-nodebuginfo")
	assert.Contains(t, args, "-platform=Linux")
	assert.Equal(t, filepath.FromSlash("/ue/Engine/Build/BatchFiles/RunUAT.sh"), cmd.Executable)
	assert.Equal(t, filepath.Join(req.OutputDir, "Linux", "game", "Binaries", "Linux", "game"), cmd.PredictedOutput)
}

func TestBuild_IsPure(t *testing.T) {
	newProject(t)
	req, err := NewRequest("game.uproject", "out", "Android")
	require.NoError(t, err)
	inst := engine.Installation{Root: "/ue"}

	first := Build(inst, req, windows)
	for i := 0; i < 10; i++ {
		again := Build(inst, req, windows)
		assert.Equal(t, first.Arguments(), again.Arguments())
		assert.Equal(t, first.PredictedOutput, again.PredictedOutput)
		assert.Equal(t, first.Render(windows), again.Render(windows))
	}
}

func TestRender_Quoting(t *testing.T) {
	cmd := Command{
		Executable: `C:\Program Files\Epic Games\UE_4.27\AutomationTool.exe`,
		Args: []Arg{
			{Kind: Word, Name: "BuildCookRun"},
			{Kind: PathValue, Name: "project", Value: `D:\My Games\game.uproject`},
			{Kind: Value, Name: "platform", Value: "Android"},
			{Kind: Flag, Name: "cook"},
		},
	}

	assert.Equal(t,
		`"C:\Program Files\Epic Games\UE_4.27\AutomationTool.exe" BuildCookRun -project="D:\My Games\game.uproject" -platform=Android -cook`,
		cmd.Render(windows))

	posix := Command{Executable: "/ue/RunUAT.sh", Args: []Arg{{Kind: PathValue, Name: "project", Value: "/home/$USER/\"g\".uproject"}}}
	assert.Equal(t, `"/ue/RunUAT.sh" -project="/home/\$USER/\"g\".uproject"`, posix.Render(linux))
}

func TestCommand_MarshalJSON(t *testing.T) {
	cmd := Command{
		Executable: "/ue/RunUAT.sh",
		Args:       []Arg{{Kind: Word, Name: "BuildCookRun"}, {Kind: Flag, Name: "cook"}},
		Platform:   Linux,
	}

	data, err := cmd.MarshalJSON()

	require.NoError(t, err)
	assert.JSONEq(t, `{"executable":"/ue/RunUAT.sh","predicted_output":"","platform":"Linux","arguments":["BuildCookRun","-cook"]}`, string(data))
}
