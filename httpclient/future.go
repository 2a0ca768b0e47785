package httpclient

import "context"

// Future is the pending result of an asynchronous request.
type Future struct {
	done   chan struct{}
	cancel context.CancelFunc
	resp   *Response
	err    error
}

// NewFuture runs fn in its own goroutine and returns immediately.
// fn receives a context that Cancel aborts.
func NewFuture(ctx context.Context, fn func(context.Context) (*Response, error)) *Future {
	ctx, cancel := context.WithCancel(ctx)
	f := &Future{done: make(chan struct{}), cancel: cancel}
	go func() {
		defer close(f.done)
		defer cancel()
		f.resp, f.err = fn(ctx)
	}()
	return f
}

// ResolvedFuture returns a Future that has already completed.
func ResolvedFuture(resp *Response, err error) *Future {
	f := &Future{done: make(chan struct{}), cancel: func() {}, resp: resp, err: err}
	close(f.done)
	return f
}

// Done is closed once the result is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Cancel aborts the in-flight request. The result then reports a
// cancellation error unless the request had already finished.
func (f *Future) Cancel() {
	f.cancel()
}

// Wait blocks until the result is available or ctx ends. A ctx error is
// returned as is and leaves the future pending.
func (f *Future) Wait(ctx context.Context) (*Response, error) {
	select {
	case <-f.done:
		return f.resp, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
