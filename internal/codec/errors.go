// Package codec serializes and deserializes secret payloads to and from the
// byte layouts the secure element stores. All operations are pure: a decode
// either fully succeeds or returns an error with no other observable effect.
package codec

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic handling with errors.Is.
var (
	ErrMalformedSecret       = errors.New("malformed secret")
	ErrUnsupportedSecretType = errors.New("unsupported secret type")
	ErrEncodingConstraint    = errors.New("encoding constraint violated")
	ErrInvalidMnemonic       = errors.New("invalid mnemonic")
)

// MalformedSecretError reports a buffer that does not match its declared
// layout: a truncated field, a size mismatch or invalid UTF-8.
type MalformedSecretError struct {
	Field     string // field being read when the violation was found
	Offset    int    // byte offset of the field in the buffer
	Declared  int    // declared length, where applicable
	Remaining int    // bytes actually available at Offset
	Reason    string // short description of the violation
}

func (e *MalformedSecretError) Error() string {
	if e.Declared > e.Remaining {
		return fmt.Sprintf("malformed secret: field %q at offset %d declares %d bytes, %d remain (%s)",
			e.Field, e.Offset, e.Declared, e.Remaining, e.Reason)
	}
	return fmt.Sprintf("malformed secret: field %q at offset %d: %s", e.Field, e.Offset, e.Reason)
}

func (e *MalformedSecretError) Is(target error) bool {
	return target == ErrMalformedSecret
}

// UnsupportedSecretTypeError reports a (type, subtype) pair the codec has
// no layout for.
type UnsupportedSecretTypeError struct {
	Type    byte
	Subtype byte
}

func (e *UnsupportedSecretTypeError) Error() string {
	return fmt.Sprintf("unsupported secret type 0x%02X subtype 0x%02X", e.Type, e.Subtype)
}

func (e *UnsupportedSecretTypeError) Is(target error) bool {
	return target == ErrUnsupportedSecretType
}

// ConstraintError reports an encode-time input that cannot fit the wire
// format, e.g. a descriptor longer than its 2-byte length prefix allows.
// The caller must shorten the input; the operation is never retried.
type ConstraintError struct {
	Field string
	Size  int
	Max   int
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("field %q is %d bytes, maximum is %d", e.Field, e.Size, e.Max)
}

func (e *ConstraintError) Is(target error) bool {
	return target == ErrEncodingConstraint
}

// InvalidMnemonicError reports a mnemonic sentence rejected during seed
// import: wrong word count or failed checksum. Advisory validation of
// stored mnemonics never raises this; the import path does.
type InvalidMnemonicError struct {
	WordCount int
	Reason    string
}

func (e *InvalidMnemonicError) Error() string {
	return fmt.Sprintf("invalid mnemonic (%d words): %s", e.WordCount, e.Reason)
}

func (e *InvalidMnemonicError) Is(target error) bool {
	return target == ErrInvalidMnemonic
}
