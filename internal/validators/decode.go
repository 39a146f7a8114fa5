// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

var (
	jsonNumberType = reflect.TypeOf(json.Number(""))
	timeType       = reflect.TypeOf(time.Time{})
	durationType   = reflect.TypeOf(time.Duration(0))
)

// Decode copies a plain payload into the struct dst points to, matching keys
// by `json` tag. With coerce set, strings are parsed into numeric, boolean
// and list fields ("42" → 42). No other conversion happens in either mode: a number or
// a boolean sent for a string field is an error. RFC 3339 strings decode into
// time.Time in both modes.
func Decode(payload map[string]any, dst any, coerce bool) error {
	hooks := []mapstructure.DecodeHookFunc{rejectNumberAsString}
	if coerce {
		hooks = append(hooks, parseString)
	}
	hooks = append(hooks,
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToTimeDurationHookFunc(),
	)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     dst,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(hooks...),
	})
	if err != nil {
		return fmt.Errorf("error creating payload decoder: %w", err)
	}

	return decoder.Decode(payload)
}

// rejectNumberAsString stops a json.Number from being stored as text. It is
// a string underneath, so the decoder would otherwise accept it for string,
// time and duration fields.
func rejectNumberAsString(from, to reflect.Type, data any) (any, error) {
	if from != jsonNumberType || to == jsonNumberType {
		return data, nil
	}
	if to.Kind() == reflect.String || to == timeType || to == durationType {
		return nil, fmt.Errorf("expected a string, got number %v", data)
	}
	return data, nil
}

// parseString converts a plain string into a numeric or boolean target, and
// wraps it for a slice target so a query parameter given once still binds to
// a list. Every other pair is passed through untouched.
func parseString(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || from == jsonNumberType || to == durationType {
		return data, nil
	}

	s := reflect.ValueOf(data).String()
	var (
		v   any
		err error
	)
	switch to.Kind() {
	case reflect.Bool:
		v, err = strconv.ParseBool(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err = strconv.ParseInt(s, 10, to.Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err = strconv.ParseUint(s, 10, to.Bits())
	case reflect.Float32, reflect.Float64:
		v, err = strconv.ParseFloat(s, to.Bits())
	case reflect.Slice:
		return []string{s}, nil
	default:
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q as %s", s, to.Kind())
	}
	return v, nil
}
