// Package engine locates an Unreal Engine 4.27 installation on the host and
// describes the files inside it that later stages need.
package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Aman-CERP/uecheck/internal/hostenv"
)

// Source records which kind of candidate produced an installation.
type Source string

const (
	SourcePackaged   Source = "packaged"
	SourceSourceTree Source = "source_tree"
	SourceConfig     Source = "config"
	SourceEnvVar     Source = "env_var"
	SourceRegistry   Source = "registry"
)

// Installation is a verified engine root. It is only produced by the
// Locator after the automation tool has been found under Root.
type Installation struct {
	Root   string `json:"root"`
	Source Source `json:"source"`
}

// Path joins parts under the installation root.
func (i Installation) Path(parts ...string) string {
	return filepath.Join(append([]string{i.Root}, parts...)...)
}

// AutomationTool returns the automation entry point that identifies a valid
// installation. UE 4.27 ships it as a .NET assembly on every host.
func (i Installation) AutomationTool() string {
	return AutomationToolPath(i.Root)
}

// AutomationToolPath returns the automation entry point under root.
func AutomationToolPath(root string) string {
	return filepath.Join(root, "Engine", "Binaries", "DotNET", "AutomationTool.exe")
}

// CommandExecutable returns the program a packaging command invokes on
// host. Windows runs AutomationTool.exe directly; other hosts go through
// the RunUAT.sh wrapper, which starts it under mono.
func (i Installation) CommandExecutable(host hostenv.Host) string {
	if host.Windows() {
		return i.AutomationTool()
	}
	return i.Path("Engine", "Build", "BatchFiles", "RunUAT.sh")
}

// BuildScript returns the engine's build entry script for host.
func (i Installation) BuildScript(host hostenv.Host) string {
	if host.Windows() {
		return i.Path("Engine", "Build", "BatchFiles", "Build.bat")
	}
	return i.Path("Engine", "Build", "BatchFiles", "Linux", "Build.sh")
}

// ListBuildTargets runs the build script with -list and returns what it
// printed. Stderr is appended after stdout.
func ListBuildTargets(ctx context.Context, env hostenv.Env, inst Installation) (string, error) {
	res, err := env.Exec(ctx, inst.BuildScript(env.Host()), "-list")
	if err != nil {
		return "", fmt.Errorf("list build targets: %w", err)
	}

	var sb strings.Builder
	if out := strings.TrimSpace(res.Stdout); out != "" {
		sb.WriteString(out)
	}
	if errOut := strings.TrimSpace(res.Stderr); errOut != "" {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(errOut)
	}
	return sb.String(), nil
}
