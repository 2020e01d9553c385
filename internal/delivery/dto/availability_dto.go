package dto

// Response DTOs

// AvailabilityDay is one calendar day with the slots still offerable for
// the requested specialist.
type AvailabilityDay struct {
	ISODate    string   `json:"iso_date"`
	LongLabel  string   `json:"long_label"`
	ShortLabel string   `json:"short_label"`
	Past       bool     `json:"past"`
	Slots      []string `json:"slots"`
}

type AvailabilityResponse struct {
	Month string            `json:"month"` // YYYY-MM
	Days  []AvailabilityDay `json:"days"`
}
