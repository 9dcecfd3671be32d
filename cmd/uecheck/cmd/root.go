// Package cmd provides the CLI commands for uecheck.
package cmd

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/uecheck/internal/config"
	"github.com/Aman-CERP/uecheck/internal/errors"
	"github.com/Aman-CERP/uecheck/internal/hostenv"
	"github.com/Aman-CERP/uecheck/internal/logging"
	"github.com/Aman-CERP/uecheck/pkg/version"
)

// Global flags
var (
	debugMode  bool
	noColor    bool
	configPath string
)

var (
	loadedConfig   *config.Config
	loggingCleanup func()
)

// newEnv builds the environment oracle. Tests replace it with a fake.
var newEnv = func(timeout time.Duration) hostenv.Env {
	return hostenv.NewOS(timeout)
}

// NewRootCmd creates the root command for the uecheck CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uecheck",
		Short: "Validate an Unreal Engine 4.27 packaging toolchain",
		Long: `uecheck verifies that this machine can package Unreal Engine 4.27
projects for Android and Linux, then generates the BuildCookRun command
and a launcher script for the requested platform.

Nothing is compiled or installed. Run 'uecheck validate' to check the
toolchain, or pass a project and output directory to get a command.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("uecheck version {{.Version}}\n")

	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.uecheck/logs/")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Read settings from this file instead of .uecheck.yaml")

	cmd.PersistentPreRunE = loadConfigAndLogging
	cmd.PersistentPostRunE = func(*cobra.Command, []string) error {
		stopLogging()
		return nil
	}

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newProbesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfigAndLogging loads configuration and installs the default logger.
func loadConfigAndLogging(_ *cobra.Command, _ []string) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadWithFile(configPath)
	} else {
		wd, _ := os.Getwd()
		cfg, err = config.Load(wd)
	}
	if err != nil {
		return errors.InputError("cannot load configuration", err)
	}
	loadedConfig = cfg

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	if debugMode {
		logCfg = logging.DebugConfig()
	}
	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	loggingCleanup = cleanup
	slog.SetDefault(logger)
	if debugMode {
		slog.Info("Debug logging enabled",
			slog.String("log_file", logging.DefaultLogPath()),
			slog.String("version", version.Version))
	}
	return nil
}

func stopLogging() {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
}

// currentConfig returns the loaded configuration, or defaults when a
// command runs without the root hooks.
func currentConfig() *config.Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	return config.NewConfig()
}

// Execute runs the root command.
func Execute() error {
	defer stopLogging()
	return NewRootCmd().Execute()
}

// reportedError marks an error whose details were already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported reports whether err was already shown to the operator.
func IsReported(err error) bool {
	var r *reportedError
	return stderrors.As(err, &r)
}
