// Package version exposes the build version of vault-transport.
//
// Version and commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/vault-transport/version.Version=1.2.0"
//
// The values feed the default User-Agent sent by httpclient.
package version
