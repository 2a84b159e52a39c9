// GuruFocus Go Client - Financial Data API Client and MCP Server
// Copyright 2026 Dave Black
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/daveblack/gurufocus-go

package gfmodels

import "testing"

type validateTestStruct struct {
	Name string `validate:"required"`
	Age  int    `validate:"min=0,max=150"`
}

func TestValidateStruct_PassesValidValue(t *testing.T) {
	v := validateTestStruct{Name: "AAPL", Age: 10}
	if err := ValidateStruct(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateStruct_RejectsMissingRequiredField(t *testing.T) {
	v := validateTestStruct{Age: 10}
	err := ValidateStruct(v)
	if err == nil {
		t.Fatal("expected validation error for missing Name")
	}
	clientErr, ok := err.(*ClientError)
	if !ok {
		t.Fatalf("expected *ClientError, got %T", err)
	}
	if clientErr.Kind != KindValidation {
		t.Errorf("got kind %s, want %s", clientErr.Kind, KindValidation)
	}
}

func TestValidateStruct_RejectsOutOfRangeField(t *testing.T) {
	v := validateTestStruct{Name: "AAPL", Age: 200}
	if err := ValidateStruct(v); err == nil {
		t.Fatal("expected validation error for out-of-range Age")
	}
}
