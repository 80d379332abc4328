package models

import "time"

// RecordCreateRequest stores a SIG record given in presentation form.
type RecordCreateRequest struct {
	Owner  string `json:"owner"  binding:"required" example:"example.com."`
	TTL    uint32 `json:"ttl"    example:"3600"`
	Class  string `json:"class,omitempty" example:"IN"`
	Text   string `json:"text"   binding:"required" example:"A 5 2 3600 20040101000000 20031201000000 12345 example.com. AQID"`
	Origin string `json:"origin,omitempty"`
}

// StoredRecordResponse is a stored SIG record.
type StoredRecordResponse struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	SIGRecordResponse
}

// RecordListResponse contains stored SIG records.
type RecordListResponse struct {
	Records []StoredRecordResponse `json:"records"`
	Count   int                    `json:"count"`
}
