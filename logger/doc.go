// Package logger provides structured logging using zerolog.
//
// It supports JSON and console output, level configuration and
// component-scoped loggers carrying structured fields.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("vault").WithComponent("transport")
//	log.Debug("transfer failed", logger.Fields("method", "GET", "uri", "/v1/sys/health"))
package logger
