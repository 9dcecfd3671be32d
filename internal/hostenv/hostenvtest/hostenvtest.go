// Package hostenvtest builds fake Windows packaging hosts for tests.
package hostenvtest

import (
	"path/filepath"

	"github.com/Aman-CERP/uecheck/internal/hostenv"
)

// Well-known fixture locations.
const (
	SDKRoot       = `C:\Android\android-sdk`
	NDKRoot       = `C:\Android\android-sdk\ndk\21.4.7075529`
	ToolchainRoot = `C:\UnrealToolchains\v19_clang-11.0.1-centos7`
	VSRoot        = `C:\Program Files\Microsoft Visual Studio\2022\Community`
	VSWhere       = `C:\Program Files (x86)\Microsoft Visual Studio\Installer\vswhere.exe`
	EngineRoot    = `C:\Program Files\Epic Games\UE_4.27`
)

// ReadyWindows returns a fake Windows host on which every required probe
// passes. Informational probes find nothing.
func ReadyWindows() *hostenv.Fake {
	f := hostenv.NewWindowsFake()

	f.SetRegistryValue(hostenv.RegistryKey{
		Path:   `SOFTWARE\Microsoft\NET Framework Setup\NDP\v4\Full`,
		View32: true,
	}, "Release", 528040)

	f.AddFile(VSWhere)
	f.SetExecArgs(VSWhere, []string{"-version", "[17.0,18.0)", "-latest", "-property", "installationPath"},
		hostenv.ExecResult{Stdout: VSRoot + "\r\n"}, nil)
	f.SetExecArgs(VSWhere, []string{"-latest", "-products", "*", "-requires", "Microsoft.Component.MSBuild", "-property", "installationPath"},
		hostenv.ExecResult{Stdout: VSRoot + "\r\n"}, nil)
	msbuild := filepath.Join(VSRoot, "MSBuild", "Current", "Bin", "MSBuild.exe")
	f.AddFile(msbuild)
	f.SetExec(msbuild, hostenv.ExecResult{Stdout: "MSBuild version 17.8.3+195e7f5a3 for .NET Framework\r\n17.8.3.51904\r\n"}, nil)

	f.SetEnv("ANDROID_HOME", SDKRoot)
	f.AddDir(filepath.Join(SDKRoot, "platforms", "android-29"))
	f.AddFile(filepath.Join(SDKRoot, "platform-tools", "adb.exe"))
	f.AddFile(filepath.Join(NDKRoot, "ndk-build.cmd"))

	f.AddTool("javac", hostenv.ExecResult{Stderr: "javac 1.8.0_392\r\n"})

	AddToolchain(f, ToolchainRoot)

	f.AddTool("cmake", hostenv.ExecResult{Stdout: "cmake version 3.27.7\r\n\r\nCMake suite maintained and supported by Kitware (kitware.com/cmake).\r\n"})
	f.AddTool("git", hostenv.ExecResult{Stdout: "git version 2.44.0.windows.1\r\n"})
	return f
}

// AddToolchain installs a complete Linux cross toolchain at root.
func AddToolchain(f *hostenv.Fake, root string) {
	f.AddFile(filepath.Join(root, "bin", "clang++.exe"))
	f.AddDir(filepath.Join(root, "lib", "gcc"))
	f.AddDir(filepath.Join(root, "x86_64-unknown-linux-gnu"))
}

// AddEngine installs an engine root with its automation tool. When android
// is true the Android platform modules are present too.
func AddEngine(f *hostenv.Fake, root string, android bool) {
	f.AddFile(filepath.Join(root, "Engine", "Binaries", "DotNET", "AutomationTool.exe"))
	f.AddFile(filepath.Join(root, "Engine", "Build", "BatchFiles", "Build.bat"))
	if !android {
		return
	}
	f.AddFile(filepath.Join(root, "Engine", "Binaries", "DotNET", "AutomationScripts", "Android", "Android.Automation.dll"))
	f.AddFile(filepath.Join(root, "Engine", "Source", "Programs", "UnrealBuildTool", "Platform", "Android", "AndroidToolChain.cs"))
	f.AddDir(filepath.Join(root, "Engine", "Source", "Developer", "Android"))
	f.AddDir(filepath.Join(root, "Engine", "Source", "Runtime", "Launch", "Private", "Android"))
}
