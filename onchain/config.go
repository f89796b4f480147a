package onchain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Config is the governance-controlled configuration published in the configuration asset.
type Config struct {
	Gateways map[string]GatewayConfig `json:"gateways,omitempty"`
}

type GatewayConfig struct {
	Enabled *bool `json:"enabled,omitempty"`
}

// GatewayDisabled returns true only for an explicit "enabled": false entry.
func (c *Config) GatewayDisabled(id string) bool {
	if c == nil {
		return false
	}
	g, ok := c.Gateways[id]
	if !ok || g.Enabled == nil {
		return false
	}
	return !*g.Enabled
}

// ParseDescription extracts the configuration from an asset description. The description is
// either a JSON object whose "main" field holds the text, or the text itself. The text starts
// with explanation and is followed by the JSON configuration. A description without a payload
// yields an empty Config.
func ParseDescription(description, explanation string) (*Config, error) {
	text := description

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(description), &fields); err == nil {
		if raw, ok := fields["main"]; ok {
			var main string
			if err := json.Unmarshal(raw, &main); err != nil {
				return nil, fmt.Errorf("description main is not a string: %w", err)
			}
			text = main
		}
	}

	if explanation != "" {
		if _, after, found := strings.Cut(text, explanation); found {
			text = after
		}
	}

	payload := strings.TrimSpace(text)
	if !strings.HasPrefix(payload, "{") {
		return &Config{}, nil
	}

	var cfg Config
	if err := json.Unmarshal([]byte(payload), &cfg); err != nil {
		return nil, fmt.Errorf("malformed configuration payload: %w", err)
	}
	return &cfg, nil
}
