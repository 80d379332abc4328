package models

// ZoneSummary is a brief zone description.
type ZoneSummary struct {
	Name           string `json:"name"`
	RecordCount    int    `json:"record_count"`
	SignatureCount int    `json:"signature_count"`
}

// ZoneListResponse contains a list of zones.
type ZoneListResponse struct {
	Zones []ZoneSummary `json:"zones"`
	Count int           `json:"count"`
}

// ZoneDetailResponse lists the SIG records of a zone.
type ZoneDetailResponse struct {
	Name       string              `json:"name"`
	Signatures []SIGRecordResponse `json:"signatures"`
}
