package dns

import "fmt"

// OpaqueRecord carries the RDATA of any type this package does not decode.
type OpaqueRecord struct {
	H    RRHeader
	T    RecordType
	Data []byte
}

// NewOpaqueRecord creates a new opaque record.
func NewOpaqueRecord(h RRHeader, rt RecordType, data []byte) *OpaqueRecord {
	return &OpaqueRecord{H: h, T: rt, Data: data}
}

// Type returns the record type.
func (r *OpaqueRecord) Type() RecordType { return r.T }

// Header returns the record header.
func (r *OpaqueRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *OpaqueRecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData returns the raw RDATA.
func (r *OpaqueRecord) MarshalRData() ([]byte, error) {
	return r.Data, nil
}

// ParseOpaqueRData copies rdlen bytes of RDATA starting at *off.
func ParseOpaqueRData(msg []byte, off *int, rdlen int, rt RecordType) (*OpaqueRecord, error) {
	if rdlen < 0 || *off+rdlen > len(msg) {
		return nil, fmt.Errorf("%w: unexpected EOF reading %s RDATA", ErrDNSError, rt)
	}
	b := make([]byte, rdlen)
	copy(b, msg[*off:*off+rdlen])
	*off += rdlen
	return &OpaqueRecord{T: rt, Data: b}, nil
}
