package transport

import (
	"fmt"
	"time"

	"github.com/kbukum/vault-transport/config"
	"github.com/kbukum/vault-transport/httpclient"
)

const (
	// DefaultBaseAddress is the address of a local Vault dev server.
	DefaultBaseAddress = "http://127.0.0.1:8200"
	// DefaultTimeout bounds each request unless the caller sets a timeout.
	DefaultTimeout = 15 * time.Second
	// DefaultName identifies the transport in logs and health reports.
	DefaultName = "vault"
)

// Config configures the client an Adapter builds for itself.
type Config = httpclient.Config

// Defaults returns the default options keyed by option name.
func Defaults() map[string]any {
	return map[string]any{
		httpclient.OptionName:        DefaultName,
		httpclient.OptionBaseAddress: DefaultBaseAddress,
		httpclient.OptionTimeout:     DefaultTimeout,
	}
}

// withDefaults fills unset options and turns off status errors.
// Status errors stay off whatever the caller asked for.
func withDefaults(cfg Config) Config {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.BaseAddress == "" {
		cfg.BaseAddress = DefaultBaseAddress
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	cfg.SurfaceHTTPErrors = false
	return cfg
}

// decodeSettings layers settings over Defaults.
func decodeSettings(settings map[string]any) (Config, error) {
	var cfg Config
	if err := config.Decode(Defaults(), settings, &cfg); err != nil {
		return Config{}, fmt.Errorf("transport: %w", err)
	}
	return cfg, nil
}

// fileConfig is the shape LoadConfig reads. VAULT_ADDR and VAULT_TOKEN
// bind to the top-level keys.
type fileConfig struct {
	Transport  Config `mapstructure:"transport"`
	VaultAddr  string `mapstructure:"vault_addr"`
	VaultToken string `mapstructure:"vault_token"`
}

// LoadConfig reads the "transport" section of the service configuration.
// VAULT_ADDR and VAULT_TOKEN fill the base address and token when the
// section leaves them unset.
func LoadConfig(serviceName string, opts ...config.LoaderOption) (Config, error) {
	var fc fileConfig
	if err := config.LoadConfig(serviceName, &fc, opts...); err != nil {
		return Config{}, fmt.Errorf("transport: %w", err)
	}
	cfg := fc.Transport
	if cfg.BaseAddress == "" {
		cfg.BaseAddress = fc.VaultAddr
	}
	if cfg.Token == "" {
		cfg.Token = fc.VaultToken
	}
	return cfg, nil
}
