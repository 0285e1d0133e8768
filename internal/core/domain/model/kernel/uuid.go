package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
// UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies entities and aggregates across the domain: orders,
// products, staff members and deliveries all carry one. It is an immutable
// value object wrapping github.com/google/uuid, safe to copy and compare.
// The zero value is invalid and fails validation - always go through one of
// the constructors.
//
// Example:
//
//	orderID := kernel.NewUUID()
//
//	productID, err := kernel.UUIDFromString("c2d9f7e0-4b11-4f63-9a35-8f0d21c7b514")
//	if err != nil {
//	    // Handle malformed input
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version 4 UUID. This is how new aggregates get
// their identity; collisions are improbable enough to ignore.
//
// Returns:
//   - UUID: A valid, unique identifier
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the textual form of a UUID. The canonical
// hyphenated form, the braced form, the urn:uuid: prefix and the bare
// 32-hex-digit form are all accepted.
//
// Use it when an identifier arrives from outside: a path parameter, a
// persisted row, a message payload.
//
// Parameters:
//   - s: The string to parse
//
// Returns:
//   - UUID: The parsed identifier
//   - error: Parse error if s is not a recognized UUID form
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format %q: %w", s, err)
	}

	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from its 16-byte binary form, as read back
// from storage. A slice of the wrong length is rejected, and so is one
// holding the nil UUID, since no persisted aggregate may carry it.
//
// Parameters:
//   - b: The raw bytes, must be exactly 16 bytes of a non-nil UUID
//
// Returns:
//   - UUID: The reconstructed identifier
//   - error: Parse error if b is malformed, ErrUUIDIsNotConstructed if b is all zero
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}

	return u, nil
}

// Validate reports whether the UUID was produced by a constructor.
// A zero-value UUID yields ErrUUIDIsNotConstructed.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}

	return nil
}

// IsEqual reports whether two UUIDs identify the same entity.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// String renders the canonical hyphenated form, e.g.
// "c2d9f7e0-4b11-4f63-9a35-8f0d21c7b514". UUID implements fmt.Stringer,
// so identifiers format naturally in logs and error messages.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID value for persistence adapters
// that store identifiers in binary form. The returned value is a copy;
// mutating it does not affect this UUID.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}
