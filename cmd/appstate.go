package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"cosmossdk.io/log"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/evrazdex/gateway-resolver/branding"
	"github.com/evrazdex/gateway-resolver/metrics"
	"github.com/evrazdex/gateway-resolver/onchain"
	"github.com/evrazdex/gateway-resolver/registry"
	"github.com/evrazdex/gateway-resolver/resolver"
	"github.com/evrazdex/gateway-resolver/settings"
	"github.com/evrazdex/gateway-resolver/types"
)

// appState is the modifiable state of the application.
type AppState struct {
	Config *types.Config

	ConfigPath string

	EnvFile string

	Debug bool

	LogLevel string

	Logger log.Logger
}

func NewAppState() *AppState {
	return &AppState{}
}

// InitAppState checks if a logger and config are present. If not, it adds them to the AppState
func (a *AppState) InitAppState() error {
	if a.Logger == nil {
		a.InitLogger()
	}
	if a.Config == nil {
		return a.loadConfigFile()
	}
	return nil
}

func (a *AppState) InitLogger() {
	// info level is default
	level := zerolog.InfoLevel
	switch a.LogLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// a.Debug overrides a.loglevel
	if a.Debug {
		a.Logger = log.NewLogger(os.Stdout, log.LevelOption(zerolog.DebugLevel))
	} else {
		a.Logger = log.NewLogger(os.Stdout, log.LevelOption(level))
	}
}

// loadConfigFile loads a configuration into the AppState. It uses the AppState ConfigPath
// to determine file path to config.
func (a *AppState) loadConfigFile() error {
	if a.Logger == nil {
		a.InitLogger()
	}

	if a.EnvFile != "" {
		err := godotenv.Load(a.EnvFile)
		switch {
		case err == nil:
			a.Logger.Debug("Loaded env file", "location", a.EnvFile)
		case errors.Is(err, os.ErrNotExist):
		default:
			return fmt.Errorf("unable to load env file %s: %w", a.EnvFile, err)
		}
	}

	config, err := ParseConfig(a.ConfigPath)
	if err != nil {
		a.Logger.Error("Unable to parse config file", "location", a.ConfigPath, "err", err)
		return err
	}
	a.Logger.Info("Successfully parsed config file", "location", a.ConfigPath)
	a.Config = config

	if err := a.validateConfig(); err != nil {
		a.Logger.Error("Invalid config", "err", err)
		return err
	}
	return nil
}

// validateConfig checks the AppState Config for any invalid settings.
func (a *AppState) validateConfig() error {
	for _, g := range a.Config.Branding.AllowedGateways {
		if g == "" {
			return fmt.Errorf("allowed-gateways must not contain empty identifiers")
		}
	}

	if err := a.validateChainConfig(); err != nil {
		return err
	}

	if a.Config.Settings.DBPath == "" {
		return fmt.Errorf("settings db-path must be set in the config (or %s)", envDBPath)
	}

	if a.Config.Api.ListenAddress == "" {
		return fmt.Errorf("api listen-address must be set in the config")
	}

	if a.Config.EvaluationWorkers == 0 {
		return fmt.Errorf("evaluation-workers must be greater than zero in the config")
	}

	return nil
}

// validateChainConfig ensures the node connection is configured correctly
func (a *AppState) validateChainConfig() error {
	c := a.Config.Chain
	if c.RPC == "" {
		return fmt.Errorf("chain rpc must be set in the config (or %s)", envRPC)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("chain request-timeout must be greater than zero in the config (request-timeout: %d)", c.RequestTimeout)
	}

	if c.CacheTTL < 0 {
		return fmt.Errorf("chain cache-ttl must not be negative in the config (cache-ttl: %d)", c.CacheTTL)
	}

	return nil
}

// Services is the wired object graph behind every command that evaluates gateways.
type Services struct {
	Branding *branding.Branding
	Provider *onchain.Provider
	Store    *settings.SQLiteStore
	Resolver *resolver.Resolver
	Registry *registry.Registry

	client *onchain.Client
}

func (s *Services) Close() {
	if s.client != nil {
		s.client.Close()
	}
	if s.Store != nil {
		s.Store.Close()
	}
}

// OpenStore opens the settings database configured in the AppState.
func (a *AppState) OpenStore() (*settings.SQLiteStore, error) {
	store, err := settings.NewSQLiteStore(a.Config.Settings.DBPath, a.Config.Settings.DefaultServiceProviders)
	if err != nil {
		return nil, fmt.Errorf("unable to open settings store %s: %w", a.Config.Settings.DBPath, err)
	}
	return store, nil
}

// BuildServices wires branding, the on-chain provider, the settings store, the resolver and
// the registry. m may be nil.
func (a *AppState) BuildServices(ctx context.Context, m *metrics.PromMetrics) (*Services, error) {
	s := &Services{Branding: branding.New(a.Config.Branding)}

	timeout := time.Duration(a.Config.Chain.RequestTimeout) * time.Second
	client, err := onchain.Dial(ctx, a.Config.Chain.RPC, timeout)
	if err != nil {
		return nil, err
	}
	s.client = client
	s.Provider = onchain.NewProvider(client, a.Logger, m, a.Config.Chain)

	store, err := a.OpenStore()
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Store = store

	s.Resolver = resolver.New(s.Branding, s.Provider, s.Store, a.Logger, m)
	s.Registry = registry.Default(s.Resolver)
	return s, nil
}
