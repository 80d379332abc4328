package dns

import (
	"encoding/binary"
	"fmt"
	"strings"
)

const (
	maxLabelLen         = 63
	maxNameWireLen      = 255
	maxCompressionDepth = 20
)

// Fqdn returns name with exactly one trailing dot. The empty name is the root.
func Fqdn(name string) string {
	name = trimDot(strings.TrimSpace(name))
	if name == "" {
		return "."
	}
	return name + "."
}

// CanonicalName returns the RFC 4034 Section 6.2 canonical form of name:
// absolute and lowercased.
func CanonicalName(name string) string {
	return strings.ToLower(Fqdn(name))
}

// EqualNames compares two names case-insensitively (RFC 4343), ignoring a
// trailing dot.
func EqualNames(a, b string) bool {
	return strings.EqualFold(trimDot(a), trimDot(b))
}

// CountLabels returns the SIG "labels" value for an owner name: the number of
// labels excluding the root and a leading "*" wildcard label (RFC 2535 Section 4.1.3).
func CountLabels(name string) int {
	name = trimDot(strings.TrimSpace(name))
	if name == "" {
		return 0
	}
	n := strings.Count(name, ".") + 1
	if name == "*" || strings.HasPrefix(name, "*.") {
		n--
	}
	return n
}

// EncodeName encodes a domain name to uncompressed DNS wire format (RFC 1035 Section 3.1).
//
// Example: "www.example.com" encodes as:
//
//	[3]www[7]example[3]com[0]
//
// A trailing dot is optional; "." encodes the root as a single zero byte.
// Labels are limited to 63 bytes and the encoded name to 255 bytes. Only ASCII
// is accepted. Names are in plain dotted form: presentation escapes such as
// "\." are not interpreted, so callers reading text go through AbsoluteName.
func EncodeName(domain string) ([]byte, error) {
	if domain == "" {
		return nil, fmt.Errorf("%w: domain_name must be non-empty", ErrDNSError)
	}
	labels, err := splitLabels(domain)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(domain)+2)
	for _, label := range labels {
		out = append(out, byte(len(label)))
		out = append(out, label...)
	}
	out = append(out, 0)

	if len(out) > maxNameWireLen {
		return nil, fmt.Errorf("%w: encoded domain name too long (%d > %d)", ErrDNSError, len(out), maxNameWireLen)
	}
	return out, nil
}

// splitLabels validates domain and returns its labels, root excluded.
func splitLabels(domain string) ([]string, error) {
	domain = trimDot(domain)
	if domain == "" {
		return nil, nil
	}
	labels := strings.Split(domain, ".")
	for _, label := range labels {
		if label == "" {
			return nil, fmt.Errorf("%w: invalid domain name (empty label): %q", ErrDNSError, domain)
		}
		if len(label) > maxLabelLen {
			return nil, fmt.Errorf("%w: DNS label too long (%d > %d): %q", ErrDNSError, len(label), maxLabelLen, label)
		}
		for j := range len(label) {
			if label[j] > 0x7F {
				return nil, fmt.Errorf("%w: domain_name must be ASCII", ErrDNSError)
			}
		}
	}
	return labels, nil
}

// DecodeName decodes a possibly-compressed DNS name from wire format.
//
// A compression pointer (RFC 1035 Section 4.1.4) is a label length byte with
// both high bits set; the low 14 bits of the two-byte value are an offset from
// the start of msg:
//
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	| 1  1|                OFFSET                   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//
// *off is advanced past the encoded name, including the pointer bytes but not
// the bytes the pointer refers to. The result has no trailing dot; the root is
// returned as "".
func DecodeName(msg []byte, off *int) (string, error) {
	return decodeName(msg, off, 0, map[int]struct{}{})
}

// decodeName tracks recursion depth and visited offsets to detect compression loops.
func decodeName(msg []byte, off *int, depth int, visited map[int]struct{}) (string, error) {
	if depth > maxCompressionDepth {
		return "", fmt.Errorf("%w: too many DNS compression pointer indirections", ErrDNSError)
	}
	if *off < 0 || *off >= len(msg) {
		return "", fmt.Errorf("%w: unexpected EOF while decoding DNS name", ErrDNSError)
	}

	labels := make([]string, 0, 6)
	for {
		if *off >= len(msg) {
			return "", fmt.Errorf("%w: unexpected EOF while decoding DNS name", ErrDNSError)
		}
		labelLen := msg[*off]
		*off++

		if labelLen == 0 {
			break
		}

		if isCompressionPointer(labelLen) {
			rest, err := followCompressionPointer(msg, off, labelLen, depth, visited)
			if err != nil {
				return "", err
			}
			if rest != "" {
				labels = append(labels, rest)
			}
			break
		}

		if hasReservedBits(labelLen) {
			return "", fmt.Errorf("%w: invalid DNS label length (reserved high bits set)", ErrDNSError)
		}

		label, err := readLabel(msg, off, int(labelLen))
		if err != nil {
			return "", err
		}
		labels = append(labels, label)
	}

	return strings.Join(labels, "."), nil
}

// isCompressionPointer checks for the 11xxxxxx label type.
func isCompressionPointer(b byte) bool {
	return (b & 0xC0) == 0xC0
}

// hasReservedBits checks for the reserved 01xxxxxx and 10xxxxxx label types.
func hasReservedBits(b byte) bool {
	return (b & 0xC0) != 0
}

// followCompressionPointer resolves the 14-bit pointer whose first byte has
// already been consumed.
func followCompressionPointer(
	msg []byte,
	off *int,
	firstByte byte,
	depth int,
	visited map[int]struct{},
) (string, error) {
	if *off >= len(msg) {
		return "", fmt.Errorf("%w: unexpected EOF while decoding compression pointer", ErrDNSError)
	}

	ptr := int(binary.BigEndian.Uint16([]byte{firstByte & 0x3F, msg[*off]}))
	*off++

	if ptr >= len(msg) {
		return "", fmt.Errorf("%w: DNS compression pointer out of bounds", ErrDNSError)
	}
	if _, ok := visited[ptr]; ok {
		return "", fmt.Errorf("%w: DNS compression pointer loop detected", ErrDNSError)
	}
	visited[ptr] = struct{}{}

	ptrOff := ptr
	return decodeName(msg, &ptrOff, depth+1, visited)
}

// readLabel reads a single DNS label of the given length.
func readLabel(msg []byte, off *int, length int) (string, error) {
	if *off+length > len(msg) {
		return "", fmt.Errorf("%w: unexpected EOF while reading DNS label", ErrDNSError)
	}
	label := msg[*off : *off+length]
	*off += length

	for _, b := range label {
		if b > 0x7F {
			return "", fmt.Errorf("%w: decoded DNS name was not ASCII", ErrDNSError)
		}
	}
	return string(label), nil
}

// trimDot removes all trailing dots from a string.
func trimDot(s string) string {
	for len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
