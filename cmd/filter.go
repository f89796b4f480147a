package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evrazdex/gateway-resolver/types"
)

// Command for reading and writing the user's filtered service providers
func filterCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Manage the list of service providers the user allows",
	}
	cmd.AddCommand(filterShowCmd(a), filterSetCmd(a))
	return cmd
}

func filterShowCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the filtered service providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.OpenStore()
			if err != nil {
				return err
			}
			defer store.Close()

			out, err := json.Marshal(store.FilteredServiceProviders())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	return withAppState(a, cmd)
}

func filterSetCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [gateway-id]...",
		Short: "Replace the filtered service providers. Pass no ids to allow none.",
		Example: strings.TrimSpace(fmt.Sprintf(`
$ %s filter set XBTSX IOB
$ %s filter set %s`, appName, appName, types.AllServiceProviders)),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.OpenStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SetFilteredServiceProviders(args); err != nil {
				return err
			}
			a.Logger.Info("Updated filtered service providers", "providers", strings.Join(args, ","))
			return nil
		},
	}
	return withAppState(a, cmd)
}
