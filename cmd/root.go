package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

const (
	appName           = "gateway-resolver"
	defaultConfigPath = "./config.yaml"
	defaultEnvFile    = ".env"
)

// NewRootCmd assembles the CLI around a.
func NewRootCmd(a *AppState) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Decides which deposit/withdraw gateways a wallet may offer",
	}
	addAppPersistantFlags(rootCmd, a)

	rootCmd.AddCommand(
		startCmd(a),
		checkCmd(a),
		gatewaysCmd(a),
		prefixesCmd(),
		filterCmd(a),
		configShowCmd(a),
		versionCmd(),
	)
	return rootCmd
}

func Execute() {
	a := NewAppState()
	if err := NewRootCmd(a).ExecuteContext(context.Background()); err != nil {
		if a.Logger == nil {
			a.InitLogger()
		}
		a.Logger.Error(err.Error())
		os.Exit(1)
	}
}

// withAppState loads logger and config before the command runs.
func withAppState(a *AppState, cmd *cobra.Command) *cobra.Command {
	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.InitAppState()
	}
	return cmd
}
