package errors

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestIsTypeMatchesWrappedErrors(t *testing.T) {
	base := MissingField("salt", "base_price")
	wrapped := fmt.Errorf("chart 1: %w", base)

	if !IsType(wrapped, TypeMissingField) {
		t.Fatal("expected wrapped error to match TypeMissingField")
	}
	if IsType(wrapped, TypeParsing) {
		t.Error("wrapped error should not match TypeParsing")
	}
	if IsType(os.ErrNotExist, TypeFileNotFound) {
		t.Error("plain errors are not domain errors")
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := FileNotFound("data/resources.json", os.ErrNotExist)

	msg := err.Error()
	if !strings.Contains(msg, "FILE_NOT_FOUND") {
		t.Errorf("message %q missing type", msg)
	}
	if !strings.Contains(msg, "data/resources.json") {
		t.Errorf("message %q missing path", msg)
	}
	if err.Context["path"] != "data/resources.json" {
		t.Errorf("expected path context, got %v", err.Context)
	}
	if err.Unwrap() != os.ErrNotExist {
		t.Errorf("expected cause to be preserved")
	}
}

func TestMissingFieldContext(t *testing.T) {
	err := MissingField("wool", "base_price")
	if !err.Is(TypeMissingField) {
		t.Fatalf("unexpected type %s", err.Type)
	}
	if err.Context["resource"] != "wool" || err.Context["field"] != "base_price" {
		t.Errorf("unexpected context %v", err.Context)
	}
}
