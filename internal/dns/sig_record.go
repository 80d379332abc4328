package dns

import (
	"fmt"
	"time"

	"github.com/jroosing/hydrasig/internal/helpers"
)

// SIGRecord is a SIG resource record (RFC 2535 Section 4.1).
//
// A SIGRecord is built once (NewSIGRecord, ParseSIGRData or ParseSIG) and
// treated as immutable afterwards. SignerName is always absolute.
type SIGRecord struct {
	H           RRHeader
	TypeCovered RecordType // type of the RRset this signature covers
	Algorithm   uint8
	Labels      uint8 // labels in the signed owner name; may differ from H.Name for wildcards
	OrigTTL     uint32
	Expiration  time.Time
	Inception   time.Time
	KeyTag      uint16
	SignerName  string
	Signature   Signature
}

// NewSIGRecord creates a SIG record. Labels is derived from the owner name in h,
// and both timestamps are truncated to whole seconds in UTC.
func NewSIGRecord(
	h RRHeader,
	covered RecordType,
	algorithm uint8,
	origTTL uint32,
	expiration, inception time.Time,
	keyTag uint16,
	signer string,
	sig Signature,
) *SIGRecord {
	return &SIGRecord{
		H:           h,
		TypeCovered: covered,
		Algorithm:   algorithm,
		Labels:      ownerLabels(h.Name),
		OrigTTL:     origTTL,
		Expiration:  expiration.UTC().Truncate(time.Second),
		Inception:   inception.UTC().Truncate(time.Second),
		KeyTag:      keyTag,
		SignerName:  Fqdn(signer),
		Signature:   sig,
	}
}

// Type returns TypeSIG.
func (r *SIGRecord) Type() RecordType { return TypeSIG }

// Header returns the record header.
func (r *SIGRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *SIGRecord) SetHeader(h RRHeader) { r.H = h }

// IsSigned reports whether the record carries signature data.
func (r *SIGRecord) IsSigned() bool { return r.Signature.IsPresent() }

// ValidAt reports whether t falls within [Inception, Expiration]. Both bounds
// are compared as absolute instants; RFC 1982 serial arithmetic is not applied.
func (r *SIGRecord) ValidAt(t time.Time) bool {
	return !t.Before(r.Inception) && !t.After(r.Expiration)
}

// Equal reports semantic equality: names compare case-insensitively and
// timestamps as instants.
func (r *SIGRecord) Equal(o *SIGRecord) bool {
	if r == nil || o == nil {
		return r == o
	}
	return EqualNames(r.H.Name, o.H.Name) &&
		r.H.Class == o.H.Class &&
		r.H.TTL == o.H.TTL &&
		r.TypeCovered == o.TypeCovered &&
		r.Algorithm == o.Algorithm &&
		r.Labels == o.Labels &&
		r.OrigTTL == o.OrigTTL &&
		r.Expiration.Equal(o.Expiration) &&
		r.Inception.Equal(o.Inception) &&
		r.KeyTag == o.KeyTag &&
		EqualNames(r.SignerName, o.SignerName) &&
		r.Signature.Equal(o.Signature)
}

// String renders the record as one zone-file entry.
func (r *SIGRecord) String() string {
	return fmt.Sprintf("%s\t%d\t%s\t%s\t%s",
		Fqdn(r.H.Name), r.H.TTL, RecordClass(r.H.Class), TypeSIG, FormatSIG(r, TextOptions{}))
}

func ownerLabels(owner string) uint8 {
	return helpers.ClampIntToUint8(CountLabels(owner))
}
