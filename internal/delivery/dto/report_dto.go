package dto

// Response DTOs

type DayCountResponse struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Total int    `json:"total"`
}

type AppointmentsPerDayResponse struct {
	From string             `json:"from,omitempty"`
	To   string             `json:"to,omitempty"`
	Days []DayCountResponse `json:"days"`
}
