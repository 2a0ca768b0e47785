package transport

import (
	"context"

	"github.com/kbukum/vault-transport/httpclient"
	"github.com/kbukum/vault-transport/logger"
)

// Adapter implements Transport over a Client. It holds no mutable state
// and is as safe for concurrent use as its Client.
type Adapter struct {
	client Client
	log    *logger.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithClient makes the Adapter drive c. Configuration passed to New or
// NewFromMap is then ignored and c is used exactly as given.
func WithClient(c Client) Option {
	return func(a *Adapter) { a.client = c }
}

// WithLogger sets the logger used for failure diagnostics. A nil logger
// keeps the global one.
func WithLogger(l *logger.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.log = l.WithComponent("transport")
		}
	}
}

func newAdapter(opts []Option) *Adapter {
	a := &Adapter{}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = logger.WithComponent("transport")
	}
	return a
}

// New creates an Adapter. Unless a client is injected, it builds an
// *httpclient.Client from cfg with the defaults applied to unset options.
// A zero Timeout is unset and takes DefaultTimeout; requests always have
// a deadline.
func New(cfg Config, opts ...Option) (*Adapter, error) {
	a := newAdapter(opts)
	if a.client != nil {
		return a, nil
	}
	client, err := httpclient.New(withDefaults(cfg))
	if err != nil {
		return nil, err
	}
	a.client = client
	return a, nil
}

// NewFromMap is New for options given by name, as in a decoded JSON or YAML
// document. Durations accept "30s" or a number of seconds. A timeout of 0
// means DefaultTimeout, not "no timeout".
func NewFromMap(settings map[string]any, opts ...Option) (*Adapter, error) {
	a := newAdapter(opts)
	if a.client != nil {
		return a, nil
	}
	cfg, err := decodeSettings(settings)
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// Send issues req through the client.
func (a *Adapter) Send(ctx context.Context, req httpclient.Request, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	resp, err := a.client.Send(ctx, req, opts...)
	return resp, a.normalize("send", req.Method, req.Path, err)
}

// SendAsync issues req in the background.
func (a *Adapter) SendAsync(ctx context.Context, req httpclient.Request, opts ...httpclient.RequestOption) *Pending {
	return newPending(a.client.SendAsync(ctx, req, opts...), func(err error) error {
		return a.normalize("send_async", req.Method, req.Path, err)
	})
}

// Request issues a request built from method and uri.
func (a *Adapter) Request(ctx context.Context, method, uri string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	resp, err := a.client.Request(ctx, method, uri, opts...)
	return resp, a.normalize("request", method, uri, err)
}

// RequestAsync issues a request built from method and uri in the background.
func (a *Adapter) RequestAsync(ctx context.Context, method, uri string, opts ...httpclient.RequestOption) *Pending {
	return newPending(a.client.RequestAsync(ctx, method, uri, opts...), func(err error) error {
		return a.normalize("request_async", method, uri, err)
	})
}

// Config reports the client's effective options.
func (a *Adapter) Config() map[string]any {
	return a.client.Config()
}

// ConfigValue reports one option of the client. ok is false when the
// client does not know the option.
func (a *Adapter) ConfigValue(name string) (any, bool) {
	v, ok := a.client.Config()[name]
	return v, ok
}

// Client returns the client the Adapter drives.
func (a *Adapter) Client() Client {
	return a.client
}

func (a *Adapter) normalize(operation, method, uri string, err error) error {
	out := normalize(err)
	if te, ok := out.(*Error); ok {
		a.log.Debug("transfer failed", logger.Fields(
			logger.FieldOperation, operation,
			logger.FieldMethod, method,
			logger.FieldURI, uri,
			logger.FieldCode, te.Code,
			logger.FieldError, te.Message,
		))
	}
	return out
}
