package synth

// Notes returns operator guidance printed after a synthesized command.
func Notes(platform Platform, projectName string) []string {
	if platform == Linux {
		return []string{
			"This command generates a SHIPPING BUILD for Linux deployment",
			"The Linux executable includes all content, assets and dependencies",
			"Ensure Linux is enabled as a target platform in the project",
			"Packaging may take 30-60 minutes depending on project size",
			"Expect the Linux executable, .pak content files and .so libraries in the output directory",
			"If errors occur, check the AutomationTool log files",
			"Copy the whole Linux folder to the target system",
			"Make the binary executable: chmod +x " + projectName,
			"Run it from a terminal: ./" + projectName,
			"The target system needs the usual runtime libraries (OpenGL, etc.)",
		}
	}
	return []string{
		"This command generates a SHIPPING BUILD for development and testing",
		"The APK includes all content, assets and prerequisites",
		"The debug keystore is used, no distribution signing is required",
		"Install_" + projectName + ".bat and Uninstall_" + projectName + ".bat are created in the output directory",
		"Ensure Android is enabled as a target platform in the project",
		"Packaging may take 45-90 minutes depending on project size",
		"If the APK lands in a plain Android folder instead of Android_ASTC, packaging did not complete",
		"If errors occur, check the AutomationTool log files",
		"For Google Play distribution create a distribution keystore and add -distribution",
	}
}
