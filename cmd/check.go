package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/evrazdex/gateway-resolver/registry"
	"github.com/evrazdex/gateway-resolver/types"
)

func evaluationOptions(cmd *cobra.Command) (types.EvaluationOptions, error) {
	var opts types.EvaluationOptions
	var err error
	if opts.OnlyBranding, err = cmd.Flags().GetBool(flagOnlyBranding); err != nil {
		return opts, err
	}
	if opts.OnlyOnChainConfig, err = cmd.Flags().GetBool(flagOnlyOnChainConfig); err != nil {
		return opts, err
	}
	return opts, nil
}

func availability(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

// Command for evaluating a single gateway
func checkCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [gateway-id]",
		Short: "Evaluate whether a gateway may currently be offered",
		Args:  cobra.ExactArgs(1),
		Example: strings.TrimSpace(fmt.Sprintf(`
$ %s check XBTSX
$ %s check IOB --%s`, appName, appName, flagOnlyOnChainConfig)),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := evaluationOptions(cmd)
			if err != nil {
				return err
			}
			jsn, err := cmd.Flags().GetBool(flagJSON)
			if err != nil {
				return err
			}

			s, err := a.BuildServices(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			d, err := s.Registry.Evaluate(cmd.Context(), types.GatewayID(args[0]), opts)
			if err != nil {
				return err
			}

			if jsn {
				out, err := json.Marshal(d)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (decided by %s)\n", d.Gateway, availability(d.Enabled), d.Stage)
			return nil
		},
	}
	addEvaluationFlags(cmd)
	addJsonFlag(cmd)
	return withAppState(a, cmd)
}

type gatewayRow struct {
	ID      types.GatewayID `json:"id"`
	Name    string          `json:"name"`
	Kind    types.Kind      `json:"kind"`
	Enabled bool            `json:"enabled"`
	Retired bool            `json:"retired"`
	Stage   string          `json:"stage"`
	Error   string          `json:"error,omitempty"`
}

// Command for listing every gateway and bridge with its availability
func gatewaysCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gateways",
		Aliases: []string{"gw"},
		Short:   "List all known gateways and bridges with their availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := evaluationOptions(cmd)
			if err != nil {
				return err
			}
			jsn, err := cmd.Flags().GetBool(flagJSON)
			if err != nil {
				return err
			}

			s, err := a.BuildServices(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			var rows []gatewayRow
			for _, res := range s.Registry.EvaluateAll(cmd.Context(), opts, int(a.Config.EvaluationWorkers)) {
				row := gatewayRow{
					ID:      res.Descriptor.ID,
					Name:    res.Descriptor.Name,
					Kind:    res.Descriptor.Kind,
					Enabled: res.Enabled,
					Retired: res.Retired(),
					Stage:   string(res.Stage),
				}
				if res.Err != nil {
					row.Error = res.Err.Error()
				}
				rows = append(rows, row)
			}

			if jsn {
				out, err := json.Marshal(rows)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tKIND\tSTATUS\tSTAGE")
			for _, row := range rows {
				status := availability(row.Enabled)
				if row.Retired {
					status = "retired"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", row.ID, row.Name, row.Kind, status, row.Stage)
			}
			return w.Flush()
		},
	}
	addEvaluationFlags(cmd)
	addJsonFlag(cmd)
	return withAppState(a, cmd)
}

// Command for deriving gateway-wrapped asset symbols
func prefixesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefixes [base-symbol]...",
		Short: "Print every gateway-wrapped symbol for the given base symbols",
		Args:  cobra.MinimumNArgs(1),
		Example: strings.TrimSpace(fmt.Sprintf(`
$ %s prefixes BTC ETH`, appName)),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, symbol := range registry.DerivePrefixedAssetSymbols(registry.DefaultPrefixes(), args) {
				fmt.Fprintln(cmd.OutOrStdout(), symbol)
			}
			return nil
		},
	}
	return cmd
}
