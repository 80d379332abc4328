package dns

import (
	"encoding/binary"
	"fmt"
)

// NameEncoding selects how the signer name is written.
type NameEncoding int

const (
	// NameCompressed writes the signer name through the message's compression
	// context; a pointer may replace a known suffix.
	NameCompressed NameEncoding = iota
	// NameCanonical writes the signer name in full, lowercased, never compressed
	// (RFC 4034 Section 6.2). This is the form signatures are computed over.
	NameCanonical
)

// ParseSIGRData parses SIG RDATA from wire format.
//
// msg is the whole message so compression pointers in the signer name can be
// followed; *off is the RDATA start and is advanced to its end on success.
// A zero rdlen is the unsigned placeholder and yields a record whose signature
// is absent. Otherwise the fixed fields and signer name are read and the rest of
// the RDATA is taken as the signature.
func ParseSIGRData(msg []byte, off *int, rdlen int) (*SIGRecord, error) {
	start := *off
	end := start + rdlen
	if rdlen < 0 || start < 0 || end > len(msg) {
		return nil, fmt.Errorf("%w: SIG RDATA exceeds message", ErrDNSError)
	}
	if rdlen == 0 {
		return &SIGRecord{}, nil
	}
	if rdlen < sigFixedLen {
		return nil, fmt.Errorf("%w: SIG RDATA too short for fixed fields (%d < %d)", ErrDNSError, rdlen, sigFixedLen)
	}

	b := msg[start : start+sigFixedLen]
	rec := &SIGRecord{
		TypeCovered: RecordType(binary.BigEndian.Uint16(b[0:2])),
		Algorithm:   b[2],
		Labels:      b[3],
		OrigTTL:     binary.BigEndian.Uint32(b[4:8]),
		Expiration:  SIGTimeFromWire(binary.BigEndian.Uint32(b[8:12])),
		Inception:   SIGTimeFromWire(binary.BigEndian.Uint32(b[12:16])),
		KeyTag:      binary.BigEndian.Uint16(b[16:18]),
	}

	cur := start + sigFixedLen
	signer, err := DecodeName(msg, &cur)
	if err != nil {
		return nil, fmt.Errorf("SIG signer name: %w", err)
	}
	rec.SignerName = Fqdn(signer)

	sigLen := end - cur
	if sigLen < 0 {
		return nil, fmt.Errorf("%w: SIG signer name overruns RDATA by %d bytes", ErrDNSError, -sigLen)
	}
	rec.Signature = PresentSignature(msg[cur:end])
	*off = end
	return rec, nil
}

// MarshalRData marshals the record to wire format with an uncompressed signer
// name. An unsigned record marshals to zero bytes.
func (r *SIGRecord) MarshalRData() ([]byte, error) {
	return r.pack(NameCompressed, nil, 0)
}

// MarshalRDataCompressed marshals the record for placement at message offset
// off, compressing the signer name against c. An unsigned record marshals to
// zero bytes and leaves c untouched.
func (r *SIGRecord) MarshalRDataCompressed(c *Compression, off int) ([]byte, error) {
	return r.pack(NameCompressed, c, off)
}

// MarshalCanonical marshals the record in canonical form: same layout, signer
// name in full and lowercased, no compression. An unsigned record marshals to
// zero bytes.
func (r *SIGRecord) MarshalCanonical() ([]byte, error) {
	return r.pack(NameCanonical, nil, 0)
}

// SigningPrefix returns the canonical RDATA without the signature: the fixed
// fields and canonical signer name. Signers hash this ahead of the signed data
// (RFC 2535 Section 4.1.8, RFC 2931 Section 3.1), so it is available for
// unsigned records too.
func (r *SIGRecord) SigningPrefix() ([]byte, error) {
	return r.appendFields(nil, NameCanonical, nil, 0)
}

func (r *SIGRecord) pack(mode NameEncoding, c *Compression, off int) ([]byte, error) {
	if !r.Signature.IsPresent() {
		return nil, nil
	}
	out := make([]byte, 0, sigFixedLen+len(r.SignerName)+2+r.Signature.Len())
	out, err := r.appendFields(out, mode, c, off)
	if err != nil {
		return nil, err
	}
	return append(out, r.Signature.data...), nil
}

// appendFields appends the fixed fields and the signer name.
func (r *SIGRecord) appendFields(out []byte, mode NameEncoding, c *Compression, off int) ([]byte, error) {
	var fixed [sigFixedLen]byte
	binary.BigEndian.PutUint16(fixed[0:2], uint16(r.TypeCovered))
	fixed[2] = r.Algorithm
	fixed[3] = r.Labels
	binary.BigEndian.PutUint32(fixed[4:8], r.OrigTTL)
	binary.BigEndian.PutUint32(fixed[8:12], SIGTimeToWire(r.Expiration))
	binary.BigEndian.PutUint32(fixed[12:16], SIGTimeToWire(r.Inception))
	binary.BigEndian.PutUint16(fixed[16:18], r.KeyTag)
	out = append(out, fixed[:]...)

	var (
		name []byte
		err  error
	)
	switch mode {
	case NameCanonical:
		name, err = EncodeName(CanonicalName(r.SignerName))
	default:
		name, err = EncodeNameCompressed(r.SignerName, off+len(out), c)
	}
	if err != nil {
		return nil, fmt.Errorf("SIG signer name: %w", err)
	}
	return append(out, name...), nil
}
