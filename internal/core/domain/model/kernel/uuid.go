package kernel

import (
	"fmt"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for the nil UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString or UUIDFromGoogle")

// UUID identifies delivery requests and dispatch runs.
//
// It wraps github.com/google/uuid so the domain never leaks the library type
// except through Google, which adapters use for persistence and transport.
// The zero value is the nil UUID and fails Validate.
//
// Example:
//
//	requestID := kernel.NewUUID()
//	runID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the textual forms accepted by uuid.Parse: canonical,
// braced, urn-prefixed and unhyphenated. The nil UUID parses successfully but
// will fail Validate.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromGoogle adopts an identifier already decoded by an adapter (a gorm
// column or a bound path parameter). The nil UUID is rejected.
func UUIDFromGoogle(id uuid.UUID) (UUID, error) {
	out := UUID{id: id}
	if err := out.Validate(); err != nil {
		return UUID{}, err
	}
	return out, nil
}

// String returns the canonical hyphenated lowercase form.
func (u UUID) String() string {
	return u.id.String()
}

// Google exposes the wrapped value for adapters. The returned array is a copy.
func (u UUID) Google() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
