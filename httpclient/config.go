package httpclient

import (
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/http/httpproxy"

	"github.com/kbukum/vault-transport/validation"
	"github.com/kbukum/vault-transport/version"
)

const (
	defaultTimeout = 30 * time.Second
)

// Option names reported by Config.ToMap and accepted in configuration files.
const (
	OptionName              = "name"
	OptionBaseAddress       = "base_address"
	OptionTimeout           = "timeout"
	OptionSurfaceHTTPErrors = "surface_http_errors"
	OptionHeaders           = "headers"
	OptionUserAgent         = "user_agent"
	OptionTLS               = "tls"
	OptionProxy             = "proxy"
)

// Config configures the HTTP client.
type Config struct {
	// Name identifies the client in logs and health reports.
	Name string `yaml:"name" mapstructure:"name"`

	// BaseAddress is prepended to relative request paths.
	BaseAddress string `yaml:"base_address" mapstructure:"base_address" validate:"omitempty,url"`

	// Timeout bounds a whole request attempt. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// SurfaceHTTPErrors turns 4xx/5xx responses into *Error values.
	// When false every status is returned as a plain Response.
	SurfaceHTTPErrors bool `yaml:"surface_http_errors" mapstructure:"surface_http_errors"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// UserAgent is sent unless a request sets its own. Defaults to version.UserAgent().
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// Token is a Vault token sent as X-Vault-Token when Auth is nil.
	// It is never reported by ToMap.
	Token string `yaml:"token" mapstructure:"token"`

	// Auth configures default authentication applied to all requests.
	// Individual requests can override this.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// TLS configures TLS settings for the HTTP transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Proxy overrides the proxy environment variables. Nil uses the environment.
	Proxy *ProxyConfig `yaml:"proxy" mapstructure:"proxy"`
}

// ProxyConfig selects outbound proxies per scheme.
type ProxyConfig struct {
	HTTP    string `yaml:"http" mapstructure:"http" validate:"omitempty,url"`
	HTTPS   string `yaml:"https" mapstructure:"https" validate:"omitempty,url"`
	NoProxy string `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// proxyFunc returns the transport proxy selector for p.
func (p *ProxyConfig) proxyFunc() func(*http.Request) (*url.URL, error) {
	if p == nil {
		return http.ProxyFromEnvironment
	}
	fn := (&httpproxy.Config{
		HTTPProxy:  p.HTTP,
		HTTPSProxy: p.HTTPS,
		NoProxy:    p.NoProxy,
	}).ProxyFunc()
	return func(req *http.Request) (*url.URL, error) {
		return fn(req.URL)
	}
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
	if c.Auth == nil && c.Token != "" {
		c.Auth = VaultTokenAuth(c.Token)
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	v := validation.New().Struct(c)
	v.Custom(c.Timeout > 0, OptionTimeout, "must be positive")
	if err := c.TLS.Validate(); err != nil {
		v.AddError(OptionTLS, err.Error())
	}
	if err := v.Err(); err != nil {
		return fmt.Errorf("httpclient: %w", err)
	}
	return nil
}

// ToMap reports the effective options keyed by option name.
// Mutating the returned map does not affect c.
func (c *Config) ToMap() map[string]any {
	m := map[string]any{
		OptionName:              c.Name,
		OptionBaseAddress:       c.BaseAddress,
		OptionTimeout:           c.Timeout,
		OptionSurfaceHTTPErrors: c.SurfaceHTTPErrors,
		OptionHeaders:           maps.Clone(c.Headers),
		OptionUserAgent:         c.UserAgent,
	}
	if c.TLS != nil {
		tls := *c.TLS
		m[OptionTLS] = &tls
	}
	if c.Proxy != nil {
		proxy := *c.Proxy
		m[OptionProxy] = &proxy
	}
	return m
}
