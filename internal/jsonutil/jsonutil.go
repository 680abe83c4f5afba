// Package jsonutil provides shared helpers for decoding JSON payloads at
// process boundaries: context-wrapped errors and array decoding with
// byte-offset reporting.
package jsonutil

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DecodeError describes a payload that could not be decoded.
// Offset is the byte offset reported by encoding/json, or -1 when unknown.
type DecodeError struct {
	Context string
	Offset  int64
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: at offset %d: %v", e.Context, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Context, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnmarshalWithContext unmarshals data into v and wraps any error in a
// *DecodeError labelled with context.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &DecodeError{Context: context, Offset: offsetOf(err), Err: err}
	}
	return nil
}

// UnmarshalArray unmarshals a JSON array into a slice. An empty array is a
// valid result; a top-level null or any non-array value is an error.
func UnmarshalArray[T any](data []byte, context string) ([]T, error) {
	var raw json.RawMessage
	if err := UnmarshalWithContext(data, &raw, context); err != nil {
		return nil, err
	}
	if len(raw) == 0 || raw[0] != '[' {
		return nil, &DecodeError{Context: context, Offset: 0, Err: errors.New("expected JSON array")}
	}
	entries := make([]T, 0)
	if err := UnmarshalWithContext(raw, &entries, context); err != nil {
		return nil, err
	}
	return entries, nil
}

func offsetOf(err error) int64 {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Offset
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Offset
	}
	return -1
}
