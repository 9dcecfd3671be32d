package certify

import (
	"fmt"
	"strings"

	"github.com/Aman-CERP/uecheck/internal/engine"
	"github.com/Aman-CERP/uecheck/internal/synth"
	"github.com/Aman-CERP/uecheck/internal/toolchain"
)

// shell holds the host command dialect used in remediation output.
type shell struct {
	comment  string
	cd       string
	setEnv   string
	rmdir    string
	run      string
	build    string
	verify   string
	platform string
	sep      string
}

var (
	cmdShell = shell{
		comment:  "REM ",
		cd:       `cd /d "%s"`,
		setEnv:   "set %s=%s",
		rmdir:    "if exist %[1]s rmdir /s /q %[1]s",
		run:      "%s.bat",
		build:    `Engine\Build\BatchFiles\Build.bat`,
		verify:   "dir %s",
		platform: "Win64",
		sep:      `\`,
	}
	posixShell = shell{
		comment:  "# ",
		cd:       `cd "%s"`,
		setEnv:   "export %s=%s",
		rmdir:    "rm -rf %s",
		run:      "./%s.sh",
		build:    "Engine/Build/BatchFiles/Linux/Build.sh",
		verify:   "ls -l %s",
		platform: "Linux",
		sep:      "/",
	}
)

func (s shell) path(parts ...string) string {
	return strings.Join(parts, s.sep)
}

// Remediation returns the ordered commands an operator can run to fix a
// failed certification. It returns nil for a certified report.
func (c *Certifier) Remediation(rep Report, inst engine.Installation) []string {
	if rep.Certified {
		return nil
	}
	if rep.Platform != synth.Android {
		return append([]string(nil), toolchain.LinuxSetupHints...)
	}

	sh := posixShell
	if c.Env.Host().Windows() {
		sh = cmdShell
	}

	sdk := toolchain.FindAndroidSDK(c.Env)
	if sdk == "" {
		sdk = "<path-to-android-sdk>"
	}
	ndk := c.Env.Getenv("ANDROID_NDK_HOME")
	if ndk == "" {
		ndk = "<path-to-android-ndk>"
	}

	dotnet := sh.path("Engine", "Binaries", "DotNET")
	dll := sh.path(dotnet, "AutomationScripts", "Android", "Android.Automation.dll")
	programs := sh.path("Engine", "Source", "Programs", "AutomationTool")

	return []string{
		fmt.Sprintf(sh.cd, inst.Root),
		sh.comment + "Set Android environment variables before building:",
		fmt.Sprintf(sh.setEnv, "ANDROID_HOME", sdk),
		fmt.Sprintf(sh.setEnv, "ANDROID_NDK_HOME", ndk),
		sh.comment + "1. Clean existing automation tools:",
		fmt.Sprintf(sh.rmdir, sh.path(dotnet, "AutomationTool")),
		fmt.Sprintf(sh.rmdir, sh.path(dotnet, "AutomationScripts")),
		sh.comment + "2. Update dependencies and generate project files:",
		fmt.Sprintf(sh.run, "Setup"),
		fmt.Sprintf(sh.run, "GenerateProjectFiles"),
		sh.comment + "3. Build UE4Editor, which rebuilds the automation tools with Android support:",
		fmt.Sprintf("%s UE4Editor %s Development", sh.build, sh.platform),
		sh.comment + "4. Verify Android.Automation.dll was created:",
		fmt.Sprintf(sh.verify, dll),
		sh.comment + "5. Alternative: build the automation tools with MSBuild:",
		fmt.Sprintf("msbuild %s -p:Configuration=Development", sh.path(programs, "AutomationTool.csproj")),
		fmt.Sprintf("msbuild %s -p:Configuration=Development", sh.path(programs, "Scripts", "AutomationScripts.Automation.csproj")),
	}
}
