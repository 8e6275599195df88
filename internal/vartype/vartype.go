// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package vartype provides an optional value wrapper that knows whether it was ever set.
package vartype

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type (
	// VarString is a type alias for Variable[string], used for optional phrases.
	VarString = Variable[string]

	// VarInt is a type alias for Variable[int], used for optional hours of the day.
	VarInt = Variable[int]
)

// Variable represents a generic type wrapper that holds a value and tracks its initialization state.
// An unset Variable serializes to JSON null.
type Variable[T any] struct {
	value T
	isset bool
}

// NewVariable creates and returns a new Variable instance initialized with the provided value.
func NewVariable[T any](value T) Variable[T] {
	return Variable[T]{
		isset: true,
		value: value,
	}
}

// Reset clears the value of the Variable and marks it as uninitialized.
func (v *Variable[T]) Reset() {
	var newVal T
	v.value = newVal
	v.isset = false
}

// Value retrieves the current value stored in the Variable.
func (v Variable[T]) Value() T {
	return v.value
}

// Set assigns the provided value to the Variable and marks it as initialized.
func (v *Variable[T]) Set(val T) {
	v.value = val
	v.isset = true
}

// IsSet returns true if the Variable has been initialized with a value, otherwise false.
func (v Variable[T]) IsSet() bool {
	return v.isset
}

// String returns the string representation of the value, or an empty string if unset.
func (v Variable[T]) String() string {
	if !v.isset {
		return ""
	}
	return fmt.Sprint(v.value)
}

// MarshalJSON implements json.Marshaler.
func (v Variable[T]) MarshalJSON() ([]byte, error) {
	if !v.isset {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null resets the Variable.
func (v *Variable[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		v.Reset()
		return nil
	}
	var val T
	if err := json.Unmarshal(b, &val); err != nil {
		return fmt.Errorf("failed to unmarshal variable: %w", err)
	}
	v.Set(val)
	return nil
}
