// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfmodels

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// validatorOnce guards construction of the package-wide validator
// instance, following the singleton pattern cartographus uses for its
// own struct validation (one *validator.Validate per process; it
// caches struct reflection info internally and is safe for concurrent
// use once built).
var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct runs struct-tag validation over v and, on failure,
// collapses every field error into a single Validation ClientError —
// this is the "top-level shape fundamentally incompatible" case §7
// describes, not a field-level coercion fault (those are handled by
// ParseOptionalNumber and friends, never by this function).
func ValidateStruct(v any) error {
	if err := getValidator().Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if ok := asValidationErrors(err, &fieldErrs); !ok {
			return NewValidationError(err.Error())
		}
		messages := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			messages = append(messages, fmt.Sprintf("%s failed %q constraint", fe.Field(), fe.Tag()))
		}
		return NewValidationError(strings.Join(messages, "; "))
	}
	return nil
}

func asValidationErrors(err error, out *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*out = ve
	return true
}
