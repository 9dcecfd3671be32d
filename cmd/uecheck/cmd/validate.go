package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/uecheck/internal/certify"
	"github.com/Aman-CERP/uecheck/internal/errors"
	"github.com/Aman-CERP/uecheck/internal/output"
	"github.com/Aman-CERP/uecheck/internal/synth"
	"github.com/Aman-CERP/uecheck/internal/ui"
	"github.com/Aman-CERP/uecheck/internal/validate"
)

const usageLine = "uecheck validate <project.uproject> <output-dir> [Android|Linux]"

type validateFlags struct {
	verbose     bool
	jsonOutput  bool
	noScript    bool
	listTargets bool
}

func newValidateCmd() *cobra.Command {
	var f validateFlags

	cmd := &cobra.Command{
		Use:   "validate [project-descriptor output-dir [platform]]",
		Short: "Check the toolchain and generate a packaging command",
		Long: `Check every toolchain dependency needed to package UE 4.27 projects.

Without arguments only the checks run. With a project descriptor and an
output directory uecheck also locates the engine, verifies platform
support and writes Package_<Project>_<Platform> beside the descriptor.
The platform defaults to Android; Linux is the only other choice.

Exit codes:
  0  success (a failed script write is only a warning)
  1  internal error
  2  invalid input
  3  toolchain not ready
  4  engine installation not found
  5  engine lacks platform support`,
		Example: `  # Check the toolchain only
  uecheck validate

  # Generate an Android command and launcher script
  uecheck validate game.uproject ./out

  # Linux, printed as JSON, without writing the script
  uecheck validate game.uproject ./out Linux --json --no-script`,
		Args: validateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, f)
		},
	}

	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Show details for every check")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&f.noScript, "no-script", false, "Print the command without writing the launcher script")
	cmd.Flags().BoolVar(&f.listTargets, "list-targets", true, "List engine build targets when Android support is missing")

	return cmd
}

func validateArgs(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0, 2, 3:
		return nil
	default:
		return errors.InputError(fmt.Sprintf("expected 0, 2 or 3 arguments, got %d", len(args)), nil).
			WithSuggestion(usageLine)
	}
}

func runValidate(cmd *cobra.Command, args []string, f validateFlags) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := currentConfig()
	opts := validate.Options{WriteScript: !f.noScript, ListTargets: f.listTargets}
	if len(args) >= 2 {
		opts.Request = &validate.RequestArgs{ProjectFile: args[0], OutputDir: args[1]}
		if len(args) == 3 {
			opts.Request.Platform = args[2]
		}
	}

	out, err := validate.Run(ctx, validate.Deps{
		Env:    newEnv(cfg.ProbeTimeout()),
		Config: cfg,
		Logger: slog.Default(),
	}, opts)

	if f.jsonOutput {
		if jerr := outputValidateJSON(cmd, out, err); jerr != nil {
			return jerr
		}
		return reported(err)
	}

	w := output.New(cmd.OutOrStdout(), output.WithStyles(ui.StylesFor(cmd.OutOrStdout(), noColor)))
	printOutcome(w, out, opts, f.verbose)
	if err != nil {
		w.Newline()
		w.Line(strings.TrimRight(errors.FormatForCLI(err), "\n"))
	}
	return reported(err)
}

// ValidateJSON is the machine-readable result of a validate run.
type ValidateJSON struct {
	Status  string           `json:"status"`
	Outcome validate.Outcome `json:"outcome"`
	Error   json.RawMessage  `json:"error,omitempty"`
}

func outputValidateJSON(cmd *cobra.Command, out validate.Outcome, runErr error) error {
	result := ValidateJSON{Status: jsonStatus(out, runErr), Outcome: out}
	if runErr != nil {
		data, err := errors.FormatJSON(runErr)
		if err != nil {
			return err
		}
		result.Error = data
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func jsonStatus(out validate.Outcome, err error) string {
	switch {
	case err != nil:
		return strings.ToLower(string(errors.GetCategory(err)))
	case out.Synthesized():
		return "synthesized"
	case out.Report.Ready:
		return "ready"
	default:
		return "not_ready"
	}
}

func printOutcome(w *output.Writer, out validate.Outcome, opts validate.Options, verbose bool) {
	if len(out.Report.Entries) == 0 {
		return
	}
	w.Line(w.Styles().Header.Render("Unreal Engine 4.27 Packaging Check"))
	out.Report.Print(w, verbose)

	for _, warning := range out.Warnings {
		w.Warning(warning)
	}

	if opts.Request == nil {
		w.Newline()
		w.Line("To generate a packaging command:")
		w.Line("  " + usageLine)
		return
	}

	if out.Engine != nil {
		w.Section("ENGINE")
		w.Successf("Found UE4 Engine at: %s (%s)", out.Engine.Root, out.Engine.Source)
	}
	if out.Certification != nil {
		printCertification(w, *out.Certification, out.Remediation, out.BuildTargets)
	}
	if !out.Synthesized() {
		return
	}

	w.Section("GENERATED PACKAGING COMMAND")
	w.Code(out.CommandLine)
	switch {
	case out.Written == nil:
		w.Infof("Launcher script not written: %s", out.Script.Path)
	case out.Written.Unchanged:
		w.Successf("Launcher script regenerated (unchanged): %s", out.Written.Path)
	case out.Written.Replaced:
		w.Successf("Launcher script replaced: %s", out.Written.Path)
	default:
		w.Successf("Launcher script created: %s", out.Written.Path)
	}

	w.Section("EXPECTED OUTPUT LOCATION")
	w.Line(out.Command.PredictedOutput)
	if out.Command.Platform == synth.Android {
		w.Line(w.Styles().Dim.Render("An APK in a plain Android folder instead of Android_ASTC means packaging did not complete."))
	}

	w.Section("PACKAGING NOTES")
	w.List(out.Notes)
}

func printCertification(w *output.Writer, rep certify.Report, remediation []string, targets string) {
	w.Section(strings.ToUpper(rep.Platform.String()) + " PLATFORM SUPPORT")
	for _, found := range rep.Found {
		w.Successf("Found: %s", found)
	}
	for _, adv := range rep.Advisory {
		w.Warningf("Missing (optional): %s", adv)
	}
	for _, missing := range rep.Missing {
		w.Errorf("Missing: %s", missing)
	}
	if rep.Certified {
		return
	}
	if len(remediation) > 0 {
		w.Section("REMEDIATION")
		w.Code(strings.Join(remediation, "\n"))
	}
	if targets != "" {
		w.Section("AVAILABLE BUILD TARGETS")
		w.Code(targets)
	}
}
