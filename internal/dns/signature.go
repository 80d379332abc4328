package dns

import (
	"bytes"
	"encoding/base64"
)

// Signature is the signature field of a SIG record. It is either present
// (possibly zero-length) or absent. An absent signature marks a record that has
// not been signed yet; such a record encodes to zero bytes of RDATA.
//
// The zero value is absent.
type Signature struct {
	data    []byte
	present bool
}

// PresentSignature returns a present signature holding a copy of b.
// A nil or empty b yields a present, zero-length signature.
func PresentSignature(b []byte) Signature {
	data := make([]byte, len(b))
	copy(data, b)
	return Signature{data: data, present: true}
}

// AbsentSignature returns the "not yet signed" state.
func AbsentSignature() Signature { return Signature{} }

// IsPresent reports whether signature data exists.
func (s Signature) IsPresent() bool { return s.present }

// Bytes returns a copy of the signature data and whether it is present.
func (s Signature) Bytes() ([]byte, bool) {
	if !s.present {
		return nil, false
	}
	return bytes.Clone(s.data), true
}

// Len returns the signature length in bytes; 0 when absent.
func (s Signature) Len() int { return len(s.data) }

// Equal reports whether both signatures are in the same state with the same bytes.
func (s Signature) Equal(o Signature) bool {
	return s.present == o.present && bytes.Equal(s.data, o.data)
}

// String returns the base64 form, or "<absent>".
func (s Signature) String() string {
	if !s.present {
		return "<absent>"
	}
	return base64.StdEncoding.EncodeToString(s.data)
}
