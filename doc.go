// Package fuuid provides FUUID, an opaque identifier that is guaranteed to
// hold a valid UUID.
//
// A FUUID can only be created through constructors that validate their input
// (or whose input is already a UUID), so functions taking a FUUID never need
// to re-check it. The underlying value comes from github.com/google/uuid.
//
// Basic Usage:
//
//	// Parse untrusted input
//	id, err := fuuid.FromString("f47ac10b-58cc-4372-a567-0e02b2c3d479")
//	if err != nil {
//	    return err
//	}
//
//	// Generate a random (v4) or time-ordered (v7) FUUID
//	id, err := fuuid.New()
//	id, err := fuuid.NewV7()
//
//	// Derive a deterministic (v5) FUUID
//	id, err := fuuid.NameBased(fuuid.NamespaceURL, "https://example.com")
//
// Validating Many Values:
//
// FromStringVNel and FromStringVNec return validated.Validated results that
// keep every failure when combined:
//
//	ids := validated.Traverse(inputs, fuuid.FromStringVNec)
//	if errs, bad := ids.Errors(); bad {
//	    return validated.Join(errs) // all malformed inputs, in order
//	}
//
// Constant Literals:
//
// Literal builds a FUUID from a constant string. The fuuidlint vet tool
// (cmd/fuuidlint) rejects non-constant arguments and invalid literals before
// the program runs:
//
//	var SystemUser = fuuid.Literal("00000000-0000-0000-0000-000000000001")
//
// Thread Safety:
//
// FUUID values are immutable and may be shared freely. The package-level
// generators may be used concurrently from multiple goroutines.
//
// Standards Compliance:
//
// Textual form and name-based derivation follow RFC 4122 and RFC 9562.
package fuuid
