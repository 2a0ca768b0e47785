// Package security holds the TLS settings used when talking to a Vault
// server over HTTPS.
//
//	cfg := security.TLSConfig{
//	    CACert:     "/etc/vault/ca.pem",
//	    ClientCert: "/etc/vault/client.pem",
//	    ClientKey:  "/etc/vault/client-key.pem",
//	}
//
//	tlsConfig, err := cfg.Build()
package security
