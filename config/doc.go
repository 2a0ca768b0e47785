// Package config loads transport settings from files, .env files,
// environment variables and plain maps.
//
// It uses Viper for layering and mapstructure hooks for decoding, so
// durations may be written as "15s" or as a number of seconds.
//
// # Usage
//
//	var cfg struct {
//	    Transport httpclient.Config `mapstructure:"transport"`
//	}
//	err := config.LoadConfig("vault", &cfg)
//
// Environment variables map onto nested keys by splitting on underscores,
// so TRANSPORT_BASE_ADDRESS sets transport.base_address.
package config
