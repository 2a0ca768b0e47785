package transport

import (
	"context"

	"github.com/kbukum/vault-transport/httpclient"
)

// Transport is what a Vault client talks to.
type Transport interface {
	// Send issues req with opts layered over it.
	Send(ctx context.Context, req httpclient.Request, opts ...httpclient.RequestOption) (*httpclient.Response, error)
	// SendAsync issues req in the background.
	SendAsync(ctx context.Context, req httpclient.Request, opts ...httpclient.RequestOption) *Pending
	// Request issues a request built from method and uri.
	Request(ctx context.Context, method, uri string, opts ...httpclient.RequestOption) (*httpclient.Response, error)
	// RequestAsync issues a request built from method and uri in the background.
	RequestAsync(ctx context.Context, method, uri string, opts ...httpclient.RequestOption) *Pending
	// Config reports the effective options of the underlying client.
	Config() map[string]any
	// ConfigValue reports a single option.
	ConfigValue(name string) (any, bool)
}

// Client is the HTTP client a Transport drives.
type Client interface {
	Send(ctx context.Context, req httpclient.Request, opts ...httpclient.RequestOption) (*httpclient.Response, error)
	SendAsync(ctx context.Context, req httpclient.Request, opts ...httpclient.RequestOption) *httpclient.Future
	Request(ctx context.Context, method, uri string, opts ...httpclient.RequestOption) (*httpclient.Response, error)
	RequestAsync(ctx context.Context, method, uri string, opts ...httpclient.RequestOption) *httpclient.Future
	Config() map[string]any
}

var (
	_ Transport = (*Adapter)(nil)
	_ Client    = (*httpclient.Client)(nil)
)
