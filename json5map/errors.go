package json5map

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupported = errors.New("unsupported type")
	ErrCycle       = errors.New("cycle detected")
	ErrUnion       = errors.New("bad union")
	ErrRecord      = errors.New("bad record")
	ErrUnknownKey  = errors.New("unknown key")
	ErrTag         = errors.New("bad tag")
)

// MarshalError represents an error during serialization
type MarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents an error during deserialization
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// TypeError represents a type mismatch error
type TypeError struct {
	FieldPath string
	Expected  string
	Actual    string
	Err       error
}

func (e *TypeError) Error() string {
	msg := fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("type error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("type error: %s", msg)
}

func (e *TypeError) Unwrap() error {
	return e.Err
}

// EssentialFieldMissingError is returned when an object lacks the key of
// an essential field.
type EssentialFieldMissingError struct {
	Key string
	// Path locates the object in the input.
	Path string
}

func (e *EssentialFieldMissingError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("essential field %q missing at %s", e.Key, e.Path)
	}
	return fmt.Sprintf("essential field %q missing", e.Key)
}
