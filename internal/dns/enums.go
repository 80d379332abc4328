package dns

// RecordType represents DNS resource record types (RFC 1035, RFC 2535, RFC 3596).
type RecordType uint16

const (
	TypeA      RecordType = 1  // IPv4 address
	TypeNS     RecordType = 2  // Authoritative name server
	TypeCNAME  RecordType = 5  // Canonical name (alias)
	TypeSOA    RecordType = 6  // Start of Authority
	TypePTR    RecordType = 12 // Domain name pointer (reverse DNS)
	TypeMX     RecordType = 15 // Mail exchange
	TypeTXT    RecordType = 16 // Text strings
	TypeSIG    RecordType = 24 // Signature (RFC 2535, SIG(0) per RFC 2931)
	TypeKEY    RecordType = 25 // Public key (RFC 2535)
	TypeAAAA   RecordType = 28 // IPv6 address (RFC 3596)
	TypeNXT    RecordType = 30 // Next domain (RFC 2535)
	TypeOPT    RecordType = 41 // EDNS pseudo-record (RFC 6891)
	TypeRRSIG  RecordType = 46 // DNSSEC signature (RFC 4034)
	TypeDNSKEY RecordType = 48 // DNSSEC key (RFC 4034)
)

// RecordClass represents DNS resource record classes (RFC 1035).
type RecordClass uint16

const (
	ClassIN  RecordClass = 1   // Internet class
	ClassCH  RecordClass = 3   // Chaos
	ClassHS  RecordClass = 4   // Hesiod
	ClassANY RecordClass = 255 // Any class (queries, SIG(0) requests)
)

// SIG RDATA layout (RFC 2535 Section 4.1):
//
//	                     1 1 1 1 1 1 1 1 1 1 2 2 2 2 2 2 2 2 2 2 3 3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|        type covered           |  algorithm    |     labels    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                         original TTL                          |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                      signature expiration                     |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                      time signed (inception)                  |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|            key  tag           |                               |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+         signer's name         +
//	|                                                               /
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-/
//	/                                                               /
//	/                            signature                          /
//	/                                                               /
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
const sigFixedLen = 18 // type covered .. key tag
