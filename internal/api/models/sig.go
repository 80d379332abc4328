package models

// SIGDecodeRequest carries SIG RDATA in hex together with the owner context
// the wire form does not contain.
type SIGDecodeRequest struct {
	RDataHex string `json:"rdata_hex" binding:"required" example:"00010502000e10..."`
	Owner    string `json:"owner"     example:"example.com."`
	TTL      uint32 `json:"ttl"       example:"3600"`
	Class    string `json:"class,omitempty" example:"IN"`
}

// SIGEncodeRequest carries SIG RDATA in presentation form.
type SIGEncodeRequest struct {
	Owner  string `json:"owner"  binding:"required" example:"example.com."`
	TTL    uint32 `json:"ttl"    example:"3600"`
	Class  string `json:"class,omitempty" example:"IN"`
	Text   string `json:"text"   binding:"required" example:"A 5 2 3600 20040101000000 20031201000000 12345 example.com. AQID"`
	Origin string `json:"origin,omitempty" example:"example.com."`
	// LegacyLabels overrides the configured presentation form for this request.
	LegacyLabels *bool `json:"legacy_labels,omitempty"`
}

// SIGRecordResponse is the decoded form of one SIG record.
type SIGRecordResponse struct {
	Owner        string `json:"owner"`
	TTL          uint32 `json:"ttl"`
	Class        string `json:"class"`
	TypeCovered  string `json:"type_covered"`
	Algorithm    uint8  `json:"algorithm"`
	Labels       uint8  `json:"labels"`
	OrigTTL      uint32 `json:"orig_ttl"`
	Expiration   string `json:"expiration"`
	Inception    string `json:"inception"`
	KeyTag       uint16 `json:"key_tag"`
	Signer       string `json:"signer"`
	Signed       bool   `json:"signed"`
	Signature    string `json:"signature,omitempty"`
	Presentation string `json:"presentation"`
	WireHex      string `json:"wire_hex"`
	CanonicalHex string `json:"canonical_hex"`
	// SigningPrefixHex is the canonical RDATA without the signature.
	SigningPrefixHex string `json:"signing_prefix_hex"`
}
