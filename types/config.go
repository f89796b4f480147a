package types

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Branding          BrandingSettings `yaml:"branding"`
	Chain             ChainSettings    `yaml:"chain"`
	Settings          StoreSettings    `yaml:"settings"`
	Api               ApiSettings      `yaml:"api"`
	EvaluationWorkers uint32           `yaml:"evaluation-workers"`
}

type BrandingSettings struct {
	WalletName      string   `yaml:"wallet-name"`
	WalletURL       string   `yaml:"wallet-url"`
	AllowedGateways []string `yaml:"allowed-gateways"`
}

type ChainSettings struct {
	RPC string `yaml:"rpc"`
	// ConfigAsset overrides the configuration asset symbol. Empty means it is derived
	// from the chain id.
	ConfigAsset string `yaml:"config-asset"`
	// seconds
	RequestTimeout int `yaml:"request-timeout"`
	CacheTTL       int `yaml:"cache-ttl"`
}

type StoreSettings struct {
	DBPath                  string   `yaml:"db-path"`
	DefaultServiceProviders []string `yaml:"default-filtered-service-providers"`
}

type ApiSettings struct {
	ListenAddress  string   `yaml:"listen-address"`
	TrustedProxies []string `yaml:"trusted-proxies"`
}

func Parse(file string) (cfg Config, err error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return
	}
	err = yaml.Unmarshal(data, &cfg)
	return cfg, err
}
