package transport

import (
	"context"
	"sync"

	"github.com/kbukum/vault-transport/httpclient"
)

// Pending is the result of an asynchronous call. The first Wait that sees
// the result applies error normalization; later calls return the same values.
type Pending struct {
	future    *httpclient.Future
	normalize func(error) error

	once sync.Once
	resp *httpclient.Response
	err  error
}

func newPending(future *httpclient.Future, normalize func(error) error) *Pending {
	return &Pending{future: future, normalize: normalize}
}

// Wait blocks until the result is available or ctx ends. A ctx error is
// returned as is and leaves the call pending.
func (p *Pending) Wait(ctx context.Context) (*httpclient.Response, error) {
	select {
	case <-p.future.Done():
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	p.once.Do(func() {
		resp, err := p.future.Wait(context.Background())
		p.resp, p.err = resp, p.normalize(err)
	})
	return p.resp, p.err
}

// Done is closed once the client has finished.
func (p *Pending) Done() <-chan struct{} {
	return p.future.Done()
}

// Cancel aborts the in-flight request.
func (p *Pending) Cancel() {
	p.future.Cancel()
}
