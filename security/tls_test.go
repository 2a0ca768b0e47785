package security

import (
	"crypto/tls"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// writeServerCA writes the certificate of a TLS test server to a PEM file.
func writeServerCA(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ca.pem")
	data := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw})
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write ca: %v", err)
	}
	return path
}

func TestTLSConfig_Build_NilConfig(t *testing.T) {
	var cfg *TLSConfig
	result, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatal("expected nil for nil config")
	}
}

func TestTLSConfig_Build_ZeroValue(t *testing.T) {
	result, err := (&TLSConfig{}).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatal("expected nil for zero-value config")
	}
}

func TestTLSConfig_Build_Insecure(t *testing.T) {
	result, err := (&TLSConfig{Insecure: true, ServerName: "vault.local"}).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.InsecureSkipVerify {
		t.Error("expected InsecureSkipVerify=true")
	}
	if result.ServerName != "vault.local" {
		t.Errorf("expected ServerName=vault.local, got %s", result.ServerName)
	}
	if result.MinVersion != tls.VersionTLS12 {
		t.Errorf("expected MinVersion=TLS12, got %d", result.MinVersion)
	}
}

func TestTLSConfig_Build_MinVersion13(t *testing.T) {
	result, err := (&TLSConfig{MinVersion: "1.3"}).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MinVersion != tls.VersionTLS13 {
		t.Errorf("expected MinVersion=TLS13, got %d", result.MinVersion)
	}
}

func TestTLSConfig_Build_CACertTrustsServer(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := &TLSConfig{CACert: writeServerCA(t, srv)}
	tlsCfg, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tlsCfg.RootCAs == nil {
		t.Fatal("expected RootCAs to be populated")
	}

	client := &http.Client{Transport: &http.Transport{TLSClientConfig: tlsCfg}}
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("request with CA should succeed: %v", err)
	}
	_ = resp.Body.Close()
}

func TestTLSConfig_Build_InvalidCACert(t *testing.T) {
	if _, err := (&TLSConfig{CACert: "/nonexistent/ca.pem"}).Build(); err == nil {
		t.Fatal("expected error for nonexistent CA file")
	}

	garbage := filepath.Join(t.TempDir(), "garbage.pem")
	if err := os.WriteFile(garbage, []byte("not a cert"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := (&TLSConfig{CACert: garbage}).Build(); err == nil {
		t.Fatal("expected error for CA file without certificates")
	}
}

func TestTLSConfig_Build_InvalidClientCert(t *testing.T) {
	cfg := &TLSConfig{ClientCert: "/nonexistent/cert.pem", ClientKey: "/nonexistent/key.pem"}
	if _, err := cfg.Build(); err == nil {
		t.Fatal("expected error for nonexistent client certificate")
	}
}

func TestTLSConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *TLSConfig
		wantErr bool
	}{
		{"nil", nil, false},
		{"empty", &TLSConfig{}, false},
		{"cert and key", &TLSConfig{ClientCert: "c.pem", ClientKey: "k.pem"}, false},
		{"cert without key", &TLSConfig{ClientCert: "c.pem"}, true},
		{"key without cert", &TLSConfig{ClientKey: "k.pem"}, true},
		{"bad min version", &TLSConfig{MinVersion: "1.0"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTLSConfig_IsEnabled(t *testing.T) {
	var nilCfg *TLSConfig
	if nilCfg.IsEnabled() {
		t.Error("nil config should not be enabled")
	}
	if (&TLSConfig{}).IsEnabled() {
		t.Error("empty config should not be enabled")
	}
	if !(&TLSConfig{CACert: "ca.pem"}).IsEnabled() {
		t.Error("config with CA should be enabled")
	}
}
