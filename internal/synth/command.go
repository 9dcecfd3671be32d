package synth

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/Aman-CERP/uecheck/internal/engine"
	"github.com/Aman-CERP/uecheck/internal/hostenv"
)

// ArgKind classifies a command argument for rendering.
type ArgKind int

const (
	// Word is emitted verbatim (the BuildCookRun verb).
	Word ArgKind = iota
	// Flag is -name.
	Flag
	// Value is -name=value with a plain value.
	Value
	// PathValue is -name="value" with an absolute path.
	PathValue
)

// Arg is one typed command argument.
type Arg struct {
	Kind  ArgKind
	Name  string
	Value string
}

// String returns the argument as passed to the process, without quoting.
func (a Arg) String() string {
	switch a.Kind {
	case Word:
		return a.Name
	case Flag:
		return "-" + a.Name
	default:
		return "-" + a.Name + "=" + a.Value
	}
}

// render returns the argument as it appears in script text.
func (a Arg) render(host hostenv.Host) string {
	if a.Kind == PathValue {
		return "-" + a.Name + "=" + quote(a.Value, host)
	}
	return a.String()
}

// Command is a synthesized packaging invocation.
type Command struct {
	Executable      string   `json:"executable"`
	Args            []Arg    `json:"-"`
	PredictedOutput string   `json:"predicted_output"`
	Platform        Platform `json:"platform"`
}

// Arguments returns the argv form of the command arguments.
func (c Command) Arguments() []string {
	out := make([]string, len(c.Args))
	for i, a := range c.Args {
		out[i] = a.String()
	}
	return out
}

// MarshalJSON includes the argv form of the arguments.
func (c Command) MarshalJSON() ([]byte, error) {
	type plain Command
	return json.Marshal(struct {
		plain
		Arguments []string `json:"arguments"`
	}{plain(c), c.Arguments()})
}

// Render returns the command as a single line of script text for host.
// The executable and path values are quoted.
func (c Command) Render(host hostenv.Host) string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quote(c.Executable, host))
	for _, a := range c.Args {
		parts = append(parts, a.render(host))
	}
	return strings.Join(parts, " ")
}

// quote wraps s in double quotes. POSIX shells also need the characters
// that stay special inside double quotes escaped.
func quote(s string, host hostenv.Host) string {
	if !host.Windows() {
		r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")
		s = r.Replace(s)
	}
	return `"` + s + `"`
}

// Build synthesizes the packaging command for req. It is a pure function
// of its inputs.
func Build(inst engine.Installation, req Request, host hostenv.Host) Command {
	p := string(req.Platform)

	args := []Arg{
		{Kind: Word, Name: "BuildCookRun"},
		{Kind: PathValue, Name: "project", Value: req.ProjectFile},
		{Kind: Value, Name: "platform", Value: p},
		{Kind: Value, Name: "targetplatform", Value: p},
		{Kind: Value, Name: "clientconfig", Value: "Shipping"},
	}
	for _, f := range []string{"cook", "compressed", "iterativecooking", "allmaps", "build", "stage", "pak", "package", "archive"} {
		args = append(args, Arg{Kind: Flag, Name: f})
	}
	args = append(args, Arg{Kind: PathValue, Name: "archivedirectory", Value: req.OutputDir})
	if req.Platform == Android {
		args = append(args, Arg{Kind: Flag, Name: "prereqs"})
	}
	for _, f := range []string{"nodebuginfo", "nocompileeditor", "NoSubmit", "utf8output"} {
		args = append(args, Arg{Kind: Flag, Name: f})
	}

	return Command{
		Executable:      inst.CommandExecutable(host),
		Args:            args,
		PredictedOutput: PredictedOutput(req),
		Platform:        req.Platform,
	}
}

// PredictedOutput returns where the packaged artifact is expected. Android
// output is nested under the ASTC texture format directory.
func PredictedOutput(req Request) string {
	name := req.ProjectName()
	switch req.Platform {
	case Linux:
		return filepath.Join(req.OutputDir, "Linux", name, "Binaries", "Linux", name)
	default:
		return filepath.Join(req.OutputDir, "Android_ASTC", name, "Binaries", "Android", name+"-Android-Shipping.apk")
	}
}
