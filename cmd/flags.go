package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	flagConfigPath        = "config"
	flagEnvFile           = "env-file"
	flagVerbose           = "verbose"
	flagLogLevel          = "log-level"
	flagJSON              = "json"
	flagMetricsPort       = "metrics-port"
	flagOnlyBranding      = "only-branding"
	flagOnlyOnChainConfig = "only-on-chain"
)

func addAppPersistantFlags(cmd *cobra.Command, a *AppState) *cobra.Command {
	cmd.PersistentFlags().StringVar(&a.ConfigPath, flagConfigPath, defaultConfigPath, "file path of config file")
	cmd.PersistentFlags().StringVar(&a.EnvFile, flagEnvFile, defaultEnvFile, "optional .env file with overrides")
	cmd.PersistentFlags().BoolVarP(&a.Debug, flagVerbose, "v", false, fmt.Sprintf("use this flag to set log level to `debug` (overrides %s flag)", flagLogLevel))
	cmd.PersistentFlags().StringVar(&a.LogLevel, flagLogLevel, "info", "log level (debug, info, warn, error)")
	return cmd
}

func addMetricsFlag(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().Int16P(flagMetricsPort, "p", 2112, "customize Prometheus metrics port")
	return cmd
}

func addJsonFlag(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().Bool(flagJSON, false, "return in json format")
	return cmd
}

func addEvaluationFlags(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().Bool(flagOnlyBranding, false, "answer from the branding configuration alone")
	cmd.Flags().Bool(flagOnlyOnChainConfig, false, fmt.Sprintf("answer from the on-chain configuration alone (wins over --%s)", flagOnlyBranding))
	return cmd
}
