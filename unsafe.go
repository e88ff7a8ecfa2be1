package fuuid

import "github.com/google/uuid"

// The Unsafe functions expose the underlying uuid.UUID for interop with code
// that cannot take a FUUID. Callers that turn raw values back into FUUIDs with
// FromUUID are responsible for their validity.

// UnsafeToRaw returns the underlying uuid.UUID.
func UnsafeToRaw(id FUUID) uuid.UUID {
	return id.u
}

// UnsafeWithRaw applies f to the underlying uuid.UUID and returns its result.
func UnsafeWithRaw[T any](id FUUID, f func(uuid.UUID) T) T {
	return f(id.u)
}
