package httpclient

import "github.com/kbukum/vault-transport/security"

// TLSConfig is an alias for the shared security TLS configuration.
type TLSConfig = security.TLSConfig
