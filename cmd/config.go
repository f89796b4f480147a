package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/evrazdex/gateway-resolver/types"
)

const (
	envRPC    = "GATEWAY_RESOLVER_RPC"
	envDBPath = "GATEWAY_RESOLVER_DB"
)

// Command for printing current configuration
func configShowCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "showConfig",
		Aliases: []string{"sc"},
		Short:   "Prints current configuration. By default it prints in yaml",
		Example: strings.TrimSpace(fmt.Sprintf(`
$ %s showConfig --config %s
$ %s sc`, appName, defaultConfigPath, appName)),
		RunE: func(cmd *cobra.Command, args []string) error {

			jsn, err := cmd.Flags().GetBool(flagJSON)
			if err != nil {
				return err
			}

			switch {
			case jsn:
				out, err := json.Marshal(a.Config)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			default:
				out, err := yaml.Marshal(a.Config)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
		},
	}
	addJsonFlag(cmd)
	return withAppState(a, cmd)
}

// ParseConfig parses the app config file and applies environment overrides.
func ParseConfig(file string) (*types.Config, error) {
	cfg, err := types.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", file, err)
	}

	if rpc := os.Getenv(envRPC); rpc != "" {
		cfg.Chain.RPC = rpc
	}
	if db := os.Getenv(envDBPath); db != "" {
		cfg.Settings.DBPath = db
	}

	// the wallet ships with every provider allowed
	if cfg.Settings.DefaultServiceProviders == nil {
		cfg.Settings.DefaultServiceProviders = []string{types.AllServiceProviders}
	}

	return &cfg, nil
}
