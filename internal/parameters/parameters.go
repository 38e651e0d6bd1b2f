// Package parameters handles option strings given by the user: a comma-separated
// list of `key` or `key=value` entries, e.g. "transposed,mirrored,glyphs=legacy".
package parameters

import (
	"github.com/janpfeifer/mazeGo/internal/generics"
	"github.com/pkg/errors"
	"slices"
	"strconv"
	"strings"
)

// Params represent the parsed options: key to (possibly empty) value.
type Params map[string]string

// Value types supported by GetParamOr and PopParamOr.
type Value interface {
	bool | int | int64 | float64 | string
}

// NewFromConfigString creates Params from the user's option string.
// Empty entries (e.g. a trailing comma) are ignored, and surrounding spaces are trimmed.
// See GetParamOr and PopParamOr to parse values from it.
func NewFromConfigString(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=") // Only split on the first '=', values may hold more.
		params[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return params
}

// PopParamOr is like GetParamOr, but it also deletes from the params map the retrieved parameter.
func PopParamOr[T Value](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetParamOr attempts to parse a parameter to the given type if the key is present, or returns the defaultValue
// if not.
//
// For bool types, a key without a value is interpreted as true.
func GetParamOr[T Value](params Params, key string, defaultValue T) (T, error) {
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	parsed, err := parse(value, defaultValue)
	if err != nil {
		return defaultValue, errors.WithMessagef(err, "failed to parse option %s=%q", key, value)
	}
	return parsed, nil
}

// parse value to the type of defaultValue. Empty values (other than for bool and string) return defaultValue.
func parse[T Value](value string, defaultValue T) (T, error) {
	toT := func(v any) T { return v.(T) }
	switch any(defaultValue).(type) {
	case string:
		return toT(value), nil
	case bool:
		switch strings.ToLower(value) {
		case "", "true", "1", "yes":
			return toT(true), nil
		case "false", "0", "no":
			return toT(false), nil
		}
		return defaultValue, errors.Errorf("invalid bool %q", value)
	}
	if value == "" {
		return defaultValue, nil
	}
	switch any(defaultValue).(type) {
	case int:
		v, err := strconv.Atoi(value)
		return toT(v), errors.Wrap(err, "to int")
	case int64:
		v, err := strconv.ParseInt(value, 10, 64)
		return toT(v), errors.Wrap(err, "to int64")
	case float64:
		v, err := strconv.ParseFloat(value, 64)
		return toT(v), errors.Wrap(err, "to float64")
	}
	return defaultValue, errors.Errorf("unsupported type %T", defaultValue)
}

// CheckAllConsumed returns an error naming the keys left in params. Use it after
// popping all known options to reject typos.
func CheckAllConsumed(params Params) error {
	if len(params) == 0 {
		return nil
	}
	keys := slices.Collect(generics.SortedKeys(params))
	return errors.Errorf("unknown option(s) %q", keys)
}
