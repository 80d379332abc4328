package dns

import (
	"encoding/binary"
	"fmt"

	"github.com/jroosing/hydrasig/internal/helpers"
)

// rrFixedLen is TYPE, CLASS, TTL and RDLENGTH following the owner name.
const rrFixedLen = 10

// RRHeader contains common metadata for DNS resource records.
type RRHeader struct {
	Name  string
	Class uint16
	TTL   uint32
}

// NewRRHeader creates a new resource record header.
func NewRRHeader(name string, class RecordClass, ttl uint32) RRHeader {
	return RRHeader{Name: name, Class: uint16(class), TTL: ttl}
}

// Record is the interface for DNS resource records.
type Record interface {
	// Type returns the DNS record type.
	Type() RecordType

	// Header returns the record's metadata.
	Header() RRHeader

	// SetHeader sets the record's metadata.
	SetHeader(h RRHeader)

	// MarshalRData marshals the record-specific data (RDATA) to wire format.
	MarshalRData() ([]byte, error)
}

// compressibleRecord is implemented by records whose RDATA contains names that
// may be compressed against the enclosing message.
type compressibleRecord interface {
	MarshalRDataCompressed(c *Compression, off int) ([]byte, error)
}

// ParseRecord parses a resource record from wire format.
// It advances *off past the parsed record on success.
func ParseRecord(msg []byte, off *int) (Record, error) {
	name, err := DecodeName(msg, off)
	if err != nil {
		return nil, err
	}
	if *off+rrFixedLen > len(msg) {
		return nil, fmt.Errorf("%w: unexpected EOF while reading DNS record", ErrDNSError)
	}
	rrType := binary.BigEndian.Uint16(msg[*off : *off+2])
	rrClass := binary.BigEndian.Uint16(msg[*off+2 : *off+4])
	ttl := binary.BigEndian.Uint32(msg[*off+4 : *off+8])
	rdlen := int(binary.BigEndian.Uint16(msg[*off+8 : *off+10]))
	*off += rrFixedLen
	if *off+rdlen > len(msg) {
		return nil, fmt.Errorf("%w: unexpected EOF while reading DNS record rdata", ErrDNSError)
	}

	rr, err := parseRData(RecordType(rrType), msg, off, rdlen)
	if err != nil {
		return nil, err
	}
	rr.SetHeader(RRHeader{Name: Fqdn(name), Class: rrClass, TTL: ttl})
	return rr, nil
}

// parseRData parses RDATA into a Record based on record type. SIG gets its own
// codec; everything else is carried opaquely.
func parseRData(rt RecordType, msg []byte, off *int, rdlen int) (Record, error) {
	switch rt {
	case TypeSIG:
		return ParseSIGRData(msg, off, rdlen)
	default:
		return ParseOpaqueRData(msg, off, rdlen, rt)
	}
}

// MarshalRecord converts a Record to wire-format bytes without compression.
func MarshalRecord(r Record) ([]byte, error) {
	return AppendRecord(nil, r, nil)
}

// AppendRecord appends r to msg, which holds the message written so far.
// Offsets are taken relative to the start of msg, so the owner name and any
// compressible RDATA names are compressed against c. A nil c disables
// compression. On error c is left as it was before the call.
func AppendRecord(msg []byte, r Record, c *Compression) (_ []byte, err error) {
	checkpoint := c.mark()
	defer func() {
		if err != nil {
			c.rollback(checkpoint)
		}
	}()

	h := r.Header()
	nameWire := []byte{0}
	if r.Type() != TypeOPT {
		b, err := EncodeNameCompressed(h.Name, len(msg), c)
		if err != nil {
			return nil, err
		}
		nameWire = b
	}

	rdataOff := len(msg) + len(nameWire) + rrFixedLen
	var rdata []byte
	if cr, ok := r.(compressibleRecord); ok && c != nil {
		rdata, err = cr.MarshalRDataCompressed(c, rdataOff)
	} else {
		rdata, err = r.MarshalRData()
	}
	if err != nil {
		return nil, err
	}
	if len(rdata) > 65535 {
		return nil, fmt.Errorf("%w: rdata too large: %d bytes (max 65535)", ErrDNSError, len(rdata))
	}

	out := append(msg, nameWire...)
	var fixed [rrFixedLen]byte
	binary.BigEndian.PutUint16(fixed[0:2], uint16(r.Type()))
	binary.BigEndian.PutUint16(fixed[2:4], h.Class)
	binary.BigEndian.PutUint32(fixed[4:8], h.TTL)
	binary.BigEndian.PutUint16(fixed[8:10], helpers.ClampIntToUint16(len(rdata)))
	out = append(out, fixed[:]...)
	return append(out, rdata...), nil
}
