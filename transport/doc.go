// Package transport issues HTTP requests to a Vault server through a
// pluggable client and reports every failure to move bytes over the wire as
// a single error type.
//
// An Adapter wraps a Client. Without one it builds an *httpclient.Client
// from the given configuration, defaulting the base address to
// http://127.0.0.1:8200 and the timeout to 15s. Status codes never become
// errors: a 404 from Vault is an ordinary *httpclient.Response.
//
//	t, err := transport.New(transport.Config{Token: token})
//	resp, err := t.Request(ctx, http.MethodGet, "/v1/sys/health")
//	if transport.IsTransportError(err) {
//	    // timeout, connection or protocol failure
//	}
//
// Asynchronous calls return a *Pending at once. Errors are normalized when
// the result is read:
//
//	p := t.RequestAsync(ctx, http.MethodGet, "/v1/secret/data/app")
//	resp, err := p.Wait(ctx)
//
// Any Client can be injected with WithClient; transporttest provides a fake.
package transport
