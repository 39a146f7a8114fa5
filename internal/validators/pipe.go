// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Policy configures how a [ValidationPipe] treats incoming payloads. The
// switches are independent of each other.
type Policy struct {
	// Whitelist strips payload fields not declared on the target struct.
	Whitelist bool

	// ForbidNonWhitelisted rejects a payload that carries an undeclared
	// field instead of silently stripping it.
	ForbidNonWhitelisted bool

	// Transform coerces plain values into the declared field types and hands
	// the typed struct to the handler. Without it the handler receives the
	// filtered plain payload.
	Transform bool
}

// ValidationPipe applies a [Policy] and struct validation to plain payloads
// (decoded JSON bodies, query strings). It is safe for concurrent use.
type ValidationPipe struct {
	policy    Policy
	validator Validator

	// declared caches reflect.Type → map[string]struct{} of accepted keys.
	declared sync.Map
}

// NewValidationPipe constructs a pipe validating with a [StructValidator].
func NewValidationPipe(policy Policy) *ValidationPipe {
	return &ValidationPipe{
		policy:    policy,
		validator: NewStructValidator(),
	}
}

// Policy returns the policy the pipe was built with.
func (p *ValidationPipe) Policy() Policy {
	return p.policy
}

// Transform runs payload through the policy against the struct dst points to
// and returns the value the handler should receive:
//   - with Transform set, dst is populated with coerced values and returned;
//   - otherwise dst is left untouched and the filtered payload is returned.
//
// Validation always runs on a coerced copy, so constraint checks do not depend
// on the Transform switch. Rejections are returned as [*ValidationError].
func (p *ValidationPipe) Transform(ctx context.Context, payload map[string]any, dst any) (any, error) {
	target := reflect.ValueOf(dst)
	if target.Kind() != reflect.Pointer || target.IsNil() || target.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, dst)
	}
	structType := target.Elem().Type()

	filtered, err := p.filter(payload, p.declaredFields(structType))
	if err != nil {
		return nil, err
	}

	instance := reflect.New(structType)
	if err := Decode(filtered, instance.Interface(), true); err != nil {
		return nil, newValidationError(fmt.Sprintf("payload does not match the declared types: %v", err))
	}

	if err := p.validator.Validate(ctx, instance.Interface()); err != nil {
		return nil, err
	}

	if !p.policy.Transform {
		return filtered, nil
	}

	target.Elem().Set(instance.Elem())
	return dst, nil
}

func (p *ValidationPipe) filter(payload map[string]any, declared map[string]struct{}) (map[string]any, error) {
	var unknown []string
	filtered := make(map[string]any, len(payload))
	for key, value := range payload {
		if _, ok := declared[key]; !ok {
			unknown = append(unknown, key)
			if p.policy.Whitelist {
				continue
			}
		}
		filtered[key] = value
	}

	if p.policy.ForbidNonWhitelisted && len(unknown) > 0 {
		slices.Sort(unknown)
		messages := make([]string, 0, len(unknown))
		for _, key := range unknown {
			messages = append(messages, fmt.Sprintf("property %s should not exist", key))
		}
		return nil, newValidationError(messages...)
	}

	return filtered, nil
}

func (p *ValidationPipe) declaredFields(t reflect.Type) map[string]struct{} {
	if cached, ok := p.declared.Load(t); ok {
		return cached.(map[string]struct{})
	}

	fields := make(map[string]struct{}, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if name := jsonFieldName(f); name != "" {
			fields[name] = struct{}{}
		}
	}

	p.declared.Store(t, fields)
	return fields
}
