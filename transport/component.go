package transport

import (
	"context"
	"fmt"

	"github.com/kbukum/vault-transport/component"
	"github.com/kbukum/vault-transport/httpclient"
)

// Component wraps an Adapter with lifecycle management.
type Component struct {
	adapter *Adapter
	config  Config
	opts    []Option
}

// compile-time assertions
var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a transport component. The adapter is created in Start.
func NewComponent(cfg Config, opts ...Option) *Component {
	return &Component{config: cfg, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	if c.config.Name != "" {
		return c.config.Name
	}
	return DefaultName
}

// Start creates the adapter.
func (c *Component) Start(_ context.Context) error {
	a, err := New(c.config, c.opts...)
	if err != nil {
		return fmt.Errorf("transport: start %s: %w", c.Name(), err)
	}
	c.adapter = a
	return nil
}

// Stop releases idle connections when the client supports it.
func (c *Component) Stop(ctx context.Context) error {
	if c.adapter == nil {
		return nil
	}
	if closer, ok := c.adapter.client.(interface{ Close(context.Context) error }); ok {
		return closer.Close(ctx)
	}
	return nil
}

// Health reports healthy once the adapter exists. It does not contact Vault.
func (c *Component) Health(_ context.Context) component.Health {
	h := component.Health{Name: c.Name(), Status: component.StatusHealthy}
	if c.adapter == nil {
		h.Status = component.StatusUnhealthy
		h.Message = "not started"
	}
	return h
}

// Describe returns the component description for startup summaries.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    c.Name(),
		Type:    "vault-transport",
		Details: c.address(),
	}
}

func (c *Component) address() string {
	if c.adapter != nil {
		if v, ok := c.adapter.ConfigValue(httpclient.OptionBaseAddress); ok {
			return fmt.Sprint(v)
		}
	}
	return withDefaults(c.config).BaseAddress
}

// Transport returns the adapter. Must be called after Start.
func (c *Component) Transport() *Adapter {
	return c.adapter
}
