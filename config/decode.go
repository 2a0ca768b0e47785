package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

var durationType = reflect.TypeOf(time.Duration(0))

// DecodeHook returns the hooks used for every decode in this package:
// "15s" style strings and plain numbers (seconds) become time.Duration,
// comma separated strings become slices.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		secondsToDurationHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// secondsToDurationHook treats bare numbers decoded into a time.Duration as
// seconds, so {"timeout": 15} means fifteen seconds rather than nanoseconds.
func secondsToDurationHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if t != durationType || f == durationType {
		return data, nil
	}
	switch v := data.(type) {
	case int:
		return time.Duration(v) * time.Second, nil
	case int32:
		return time.Duration(v) * time.Second, nil
	case int64:
		return time.Duration(v) * time.Second, nil
	case uint:
		return time.Duration(v) * time.Second, nil
	case float32:
		return time.Duration(float64(v) * float64(time.Second)), nil
	case float64:
		return time.Duration(v * float64(time.Second)), nil
	default:
		return data, nil
	}
}

// Decode layers settings over defaults and decodes the result into out.
// Keys are option names (case-insensitive); settings win on conflicts.
func Decode(defaults, settings map[string]interface{}, out interface{}) error {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if len(settings) > 0 {
		if err := v.MergeConfigMap(settings); err != nil {
			return fmt.Errorf("config: merge settings: %w", err)
		}
	}
	if err := v.Unmarshal(out, viper.DecodeHook(DecodeHook())); err != nil {
		return fmt.Errorf("config: decode settings: %w", err)
	}
	return nil
}
