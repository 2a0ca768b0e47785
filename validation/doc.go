// Package validation checks configuration structs.
//
// Struct tags are evaluated with go-playground/validator; field names in
// messages are the mapstructure option names so they match what callers
// wrote in their configuration. A Validator collects additional checks that
// tags cannot express.
//
//	type Config struct {
//	    BaseAddress string `mapstructure:"base_address" validate:"omitempty,url"`
//	}
//
//	v := validation.New()
//	v.Struct(cfg)
//	v.Custom(cfg.Timeout >= 0, "timeout", "must not be negative")
//	if err := v.Err(); err != nil { ... }
package validation
