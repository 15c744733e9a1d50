// Package jsonutil provides shared utilities for JSON parsing patterns:
// error wrapping and locating arrays inside loosely shaped payloads.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalArrayAllowEmpty unmarshals JSON data into a slice.
// Empty arrays are allowed; a JSON null yields a nil slice.
func UnmarshalArrayAllowEmpty[T any](data []byte, context string) ([]T, error) {
	var entries []T
	if err := UnmarshalWithContext(data, &entries, context); err != nil {
		return nil, err
	}
	return entries, nil
}

// IsArray reports whether data holds a JSON array (ignoring surrounding whitespace).
func IsArray(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// IsObject reports whether data holds a JSON object (ignoring surrounding whitespace).
func IsObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// IsObjectArray reports whether data is a non-empty JSON array whose elements
// are all objects.
func IsObjectArray(data []byte) bool {
	if !IsArray(data) {
		return false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil || len(elems) == 0 {
		return false
	}
	for _, e := range elems {
		if !IsObject(e) {
			return false
		}
	}
	return true
}

// ArrayField returns the raw value of the named field of a JSON object when
// that value is an array. When name is absent, the first field in key order
// holding a non-empty array of objects is returned.
func ArrayField(data []byte, name string, context string) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := UnmarshalWithContext(data, &fields, context); err != nil {
		return nil, err
	}
	if raw, ok := fields[name]; ok {
		if !IsArray(raw) {
			return nil, fmt.Errorf("%s: field %q is not an array", context, name)
		}
		return raw, nil
	}
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		if IsObjectArray(fields[key]) {
			return fields[key], nil
		}
	}
	return nil, fmt.Errorf("%s: no array of objects", context)
}
