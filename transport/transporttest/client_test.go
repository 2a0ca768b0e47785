package transporttest_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/vault-transport/httpclient"
	"github.com/kbukum/vault-transport/transport"
	"github.com/kbukum/vault-transport/transport/transporttest"
)

var _ transport.Client = (*transporttest.Client)(nil)

func TestClient_DefaultAnswer(t *testing.T) {
	c := transporttest.New()
	resp, err := c.Request(context.Background(), http.MethodGet, "/v1/sys/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_RecordsOptions(t *testing.T) {
	c := transporttest.New()
	req := httpclient.Request{Method: http.MethodGet, Path: "/v1/x", Headers: map[string]string{"A": "1"}}
	_, _ = c.Send(context.Background(), req, httpclient.WithHeader("B", "2"))

	calls := c.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, calls[0].Headers)
	assert.NotContains(t, req.Headers, "B")
}

func TestClient_Gate(t *testing.T) {
	want := errors.New("boom")
	c := transporttest.New().Respond(nil, want)
	c.Gate = make(chan struct{})

	f := c.RequestAsync(context.Background(), http.MethodGet, "/")
	select {
	case <-f.Done():
		t.Fatal("gate did not hold the call")
	default:
	}
	close(c.Gate)

	_, err := f.Wait(context.Background())
	assert.Same(t, want, err)
}

func TestClient_ConfigCopy(t *testing.T) {
	c := transporttest.New()
	c.Settings["timeout"] = 1
	cfg := c.Config()
	cfg["timeout"] = 2
	assert.Equal(t, 1, c.Settings["timeout"])
}
