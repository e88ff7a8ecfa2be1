package fuuid

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// FUUID is a 128-bit identifier that is known to be a valid UUID.
//
// The field is unexported: outside this package a FUUID can only be obtained
// through the parsing functions, FromUUID, the generators, Literal or Nil.
// The zero value is the Nil FUUID.
type FUUID struct {
	u uuid.UUID
}

// Version represents the UUID version
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
	VersionReorderedTime
	VersionTimeSorted // UUIDv7
	VersionCustom     // UUIDv8
)

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// Nil is the all-zero FUUID defined by RFC 4122 section 4.1.7.
var Nil FUUID

// FromUUID wraps a value that is already a valid UUID. It cannot fail.
func FromUUID(u uuid.UUID) FUUID {
	return FUUID{u: u}
}

// Version returns the version nibble of the identifier.
func (id FUUID) Version() Version {
	return Version(id.u[6] >> 4)
}

// Variant returns the variant of the identifier.
func (id FUUID) Variant() Variant {
	switch {
	case (id.u[8] & 0x80) == 0x00:
		return VariantNCS
	case (id.u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (id.u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// String returns the canonical lowercase form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
// It is the only textual representation a FUUID has.
func (id FUUID) String() string {
	return id.u.String()
}

// GoString makes %#v print the canonical form as well.
func (id FUUID) GoString() string {
	return id.u.String()
}

// Bytes returns a copy of the 16 bytes of the identifier.
func (id FUUID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, id.u[:])
	return b
}

// IsNil reports whether id is the Nil FUUID.
func (id FUUID) IsNil() bool {
	return id == Nil
}

// Compare returns -1, 0 or +1 ordering the identifiers by their bytes.
func (id FUUID) Compare(other FUUID) int {
	return bytes.Compare(id.u[:], other.u[:])
}

// Compare orders a and b; it has the signature slices.SortFunc expects.
func Compare(a, b FUUID) int {
	return a.Compare(b)
}

// Equal returns true if id and other represent the same FUUID
func (id FUUID) Equal(other FUUID) bool {
	return id == other
}

// Hash returns a 64-bit hash of the identifier. Equal identifiers hash
// equally, and the value is the same across processes and platforms.
func (id FUUID) Hash() uint64 {
	return xxhash.Sum64(id.u[:])
}
