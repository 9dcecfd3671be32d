package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/uecheck/internal/toolchain"
)

// ProbeJSON describes one registered probe.
type ProbeJSON struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

func newProbesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "probes",
		Short: "List the toolchain checks in execution order",
		Long: `List every toolchain check uecheck runs, in the order results are
reported. Informational checks are shown but never affect readiness.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := currentConfig()
			reg := toolchain.DefaultRegistry(newEnv(cfg.ProbeTimeout()), toolchain.OptionsFromConfig(cfg))

			if jsonOutput {
				var list []ProbeJSON
				for _, r := range reg.Registrations() {
					list = append(list, ProbeJSON{Name: r.Probe.Name(), Required: r.Required})
				}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(list)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, r := range reg.Registrations() {
				kind := "required"
				if !r.Required {
					kind = "informational"
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", r.Probe.Name(), kind)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
