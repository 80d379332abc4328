// Package dns implements the wire and presentation codecs for the SIG resource
// record together with the small set of DNS primitives they depend on.
//
// Standards Compliance:
//
//   - RFC 1035: Domain Names - Implementation and Specification (name encoding, compression)
//   - RFC 2535: Domain Name System Security Extensions (SIG RR layout and presentation form)
//   - RFC 2931: DNS Request and Transaction Signatures (SIG(0))
//   - RFC 3597: Handling of Unknown DNS Resource Record Types (TYPEnnn mnemonics)
//   - RFC 4034: Resource Records for the DNS Security Extensions (canonical RR form)
//
// Type-Oriented Design:
//
// The SIG record is an explicit type (SIGRecord) rather than a generic struct.
// Its signature data is a two-state value (Signature) so "not yet signed" can
// never be confused with an empty signature.
//
// Error Handling:
//
// Wire decoding failures wrap ErrDNSError. Presentation-format failures are
// returned as *ParseError, which matches ErrParse with errors.Is.
package dns

import (
	"errors"
	"fmt"
)

var (
	// ErrDNSError is a sentinel error type for DNS wire-format violations.
	// Wrap this with fmt.Errorf("%w: context", ErrDNSError) to add context.
	ErrDNSError = errors.New("dns wire error")

	// ErrParse is the sentinel matched by every presentation-format error.
	ErrParse = errors.New("dns presentation error")

	errMissingToken = errors.New("missing token")
)

// ParseError describes a presentation-format field that could not be read.
type ParseError struct {
	Field string // field being read, e.g. "KeyTag"
	Token string // offending token, empty when the token was missing
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("bad SIG %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("bad SIG %s %q: %v", e.Field, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrParse so callers can classify without a type assertion.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
