package security

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSConfig configures the client side of a TLS connection.
// Field names follow the VAULT_CACERT / VAULT_CLIENT_CERT family of settings.
type TLSConfig struct {
	// CACert is a PEM file used to verify the server certificate.
	CACert string `yaml:"ca_cert" mapstructure:"ca_cert"`

	// ClientCert and ClientKey enable mutual TLS. Both or neither.
	ClientCert string `yaml:"client_cert" mapstructure:"client_cert"`
	ClientKey  string `yaml:"client_key" mapstructure:"client_key"`

	// ServerName overrides the name used for certificate verification.
	ServerName string `yaml:"server_name" mapstructure:"server_name"`

	// Insecure disables server certificate verification.
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`

	// MinVersion is "1.2" or "1.3". Empty means 1.2.
	MinVersion string `yaml:"min_version" mapstructure:"min_version"`
}

var tlsVersions = map[string]uint16{
	"":    tls.VersionTLS12,
	"1.2": tls.VersionTLS12,
	"1.3": tls.VersionTLS13,
}

// Build creates a *tls.Config from the configuration.
// Returns nil if nothing is configured, leaving the transport defaults alone.
func (c *TLSConfig) Build() (*tls.Config, error) {
	if !c.IsEnabled() {
		return nil, nil
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cfg := &tls.Config{
		InsecureSkipVerify: c.Insecure, //nolint:gosec // opt-in via config
		ServerName:         c.ServerName,
		MinVersion:         tlsVersions[c.MinVersion],
	}

	if err := c.loadCA(cfg); err != nil {
		return nil, err
	}
	if err := c.loadClientCert(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the TLS configuration is consistent.
func (c *TLSConfig) Validate() error {
	if c == nil {
		return nil
	}
	if (c.ClientCert != "") != (c.ClientKey != "") {
		return fmt.Errorf("security: client_cert and client_key must be provided together")
	}
	if _, ok := tlsVersions[c.MinVersion]; !ok {
		return fmt.Errorf("security: unsupported min_version %q", c.MinVersion)
	}
	return nil
}

// IsEnabled returns true if any TLS setting is configured.
func (c *TLSConfig) IsEnabled() bool {
	if c == nil {
		return false
	}
	return c.Insecure || c.CACert != "" || c.ClientCert != "" || c.ServerName != "" || c.MinVersion != ""
}

func (c *TLSConfig) loadCA(cfg *tls.Config) error {
	if c.CACert == "" {
		return nil
	}
	ca, err := os.ReadFile(c.CACert)
	if err != nil {
		return fmt.Errorf("security: read ca_cert: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(ca) {
		return fmt.Errorf("security: no certificates found in %s", c.CACert)
	}
	cfg.RootCAs = pool
	return nil
}

func (c *TLSConfig) loadClientCert(cfg *tls.Config) error {
	if c.ClientCert == "" {
		return nil
	}
	cert, err := tls.LoadX509KeyPair(c.ClientCert, c.ClientKey)
	if err != nil {
		return fmt.Errorf("security: load client certificate: %w", err)
	}
	cfg.Certificates = []tls.Certificate{cert}
	return nil
}
