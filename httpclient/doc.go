// Package httpclient provides the HTTP client the transport layer drives.
//
// A Client resolves request paths against a base address, applies default
// headers, authentication, TLS and proxy settings, and classifies failures
// into *Error values. Every call has a synchronous form and an asynchronous
// form that returns a Future.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseAddress: "https://vault.example.com:8200",
//	    Timeout:     15 * time.Second,
//	    Auth:        httpclient.VaultTokenAuth(token),
//	})
//
//	resp, err := client.Request(ctx, http.MethodGet, "/v1/sys/health")
//
// # Status Codes
//
// With SurfaceHTTPErrors unset, 4xx and 5xx responses come back as plain
// Responses. Only failures to complete the exchange are errors:
//
//	fut := client.RequestAsync(ctx, http.MethodGet, "/v1/secret/data/app")
//	resp, err := fut.Wait(ctx)
//	if httpclient.IsTransfer(err) {
//	    // timeout, connection or protocol failure
//	}
package httpclient
