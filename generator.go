package fuuid

import (
	"crypto"
	"crypto/rand"
	"io"
	"time"

	"github.com/google/uuid"
)

// Standard namespaces from RFC 4122 appendix C for use with NameBased.
var (
	NamespaceDNS  = FromUUID(uuid.NameSpaceDNS)
	NamespaceURL  = FromUUID(uuid.NameSpaceURL)
	NamespaceOID  = FromUUID(uuid.NameSpaceOID)
	NamespaceX500 = FromUUID(uuid.NameSpaceX500)
)

// nameHash is the hash used by NameBased; a variable so tests can swap in an
// unavailable hash.
var nameHash = crypto.SHA1

// Generator produces random identifiers from an io.Reader.
// It is safe for concurrent use if its reader is.
type Generator struct {
	randReader io.Reader
}

// NewGenerator creates a generator reading from crypto/rand.
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
	}
}

// NewGeneratorWithReader creates a generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		randReader: r,
	}
}

// New generates a random (version 4) FUUID.
func (g *Generator) New() (FUUID, error) {
	u, err := uuid.NewRandomFromReader(g.randReader)
	if err != nil {
		return Nil, err
	}
	return FUUID{u: u}, nil
}

// NewV7 generates a time-ordered (version 7) FUUID. Identifiers created in
// the same process are strictly increasing.
func (g *Generator) NewV7() (FUUID, error) {
	u, err := uuid.NewV7FromReader(g.randReader)
	if err != nil {
		return Nil, err
	}
	return FUUID{u: u}, nil
}

// Must is a helper that wraps a call to a function returning (FUUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = fuuid.Must(generator.New())
func Must(id FUUID, err error) FUUID {
	if err != nil {
		panic(err)
	}
	return id
}

// defaultGenerator is the package-level generator used by New and NewV7
var defaultGenerator = NewGenerator()

// New generates a random (version 4) FUUID using crypto/rand.
func New() (FUUID, error) {
	return defaultGenerator.New()
}

// NewV7 generates a time-ordered (version 7) FUUID using crypto/rand.
func NewV7() (FUUID, error) {
	return defaultGenerator.NewV7()
}

// NameBased derives the version 5 FUUID of name within namespace. The result
// depends only on the inputs and is identical on every platform.
//
// It returns ErrUnsupported if SHA-1 is not linked into the binary.
func NameBased(namespace FUUID, name string) (FUUID, error) {
	if !nameHash.Available() {
		return Nil, ErrUnsupported
	}
	return FUUID{u: uuid.NewHash(nameHash.New(), namespace.u, []byte(name), 5)}, nil
}

// Timestamp extracts the Unix timestamp (in milliseconds) from a v7 FUUID.
// It returns 0 for other versions.
func (id FUUID) Timestamp() int64 {
	if id.Version() != VersionTimeSorted {
		return 0
	}
	// 48-bit big-endian timestamp in bytes 0-5
	timestamp := uint64(id.u[0])<<40 |
		uint64(id.u[1])<<32 |
		uint64(id.u[2])<<24 |
		uint64(id.u[3])<<16 |
		uint64(id.u[4])<<8 |
		uint64(id.u[5])
	return int64(timestamp)
}

// Time returns the timestamp of a v7 FUUID, or the zero time otherwise.
func (id FUUID) Time() time.Time {
	if id.Version() != VersionTimeSorted {
		return time.Time{}
	}
	return time.UnixMilli(id.Timestamp())
}
