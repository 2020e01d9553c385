package dto

import (
	"github.com/google/uuid"

	"clinica-turnos/internal/scheduling"
)

// Request DTOs

type SelectSpecialtyRequest struct {
	Specialty string `json:"specialty" validate:"required"`
}

type SelectSpecialistRequest struct {
	SpecialistID uuid.UUID `json:"specialist_id" validate:"required"`
}

type SelectDayRequest struct {
	DayIndex int `json:"day_index" validate:"gte=0"`
}

type SelectTimeRequest struct {
	Time string `json:"time" validate:"required,slot_time"`
}

type SetPatientEmailRequest struct {
	PatientEmail string `json:"patient_email" validate:"required,email"`
}

type ChangeMonthRequest struct {
	Delta int `json:"delta" validate:"required,oneof=-1 1"`
}

// SwipeRequest reports a horizontal drag in pixels; negative distances
// swipe left (next month).
type SwipeRequest struct {
	DistancePx float64 `json:"distance_px" validate:"required"`
}

// Response DTOs

type BookingSessionDay struct {
	ISODate    string `json:"iso_date"`
	LongLabel  string `json:"long_label"`
	ShortLabel string `json:"short_label"`
	Past       bool   `json:"past"`
}

// BookingSessionResponse is the full wizard state the client renders
// after every mutation.
type BookingSessionResponse struct {
	SessionID    uuid.UUID                 `json:"session_id"`
	Open         bool                      `json:"open"`
	Step         int                       `json:"step"`
	Month        string                    `json:"month"` // YYYY-MM
	Days         []BookingSessionDay       `json:"days"`
	ActiveDay    int                       `json:"active_day"`
	VisibleSlots []string                  `json:"visible_slots"`
	Draft        scheduling.BookingRequest `json:"draft"`
}

// BookingSubmitResponse pairs the emitted request with the appointment
// the authoritative commit produced.
type BookingSubmitResponse struct {
	Request     scheduling.BookingRequest `json:"request"`
	Appointment *AppointmentResponse      `json:"appointment"`
}
