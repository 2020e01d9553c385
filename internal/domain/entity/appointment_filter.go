package entity

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	From         string // Format: YYYY-MM-DD, inclusive
	To           string // Format: YYYY-MM-DD, inclusive (end of day)
	Specialty    string
	Status       string
	PatientID    string
	SpecialistID string
}

// DayCount is a per-day appointment count row for the admin dashboard.
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Total int    `json:"total"`
}
