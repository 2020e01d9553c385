package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateAppointmentRequest is the payload the booking flow emits on
// submit. PatientEmail is only set by the admin flow, which books on
// behalf of a patient.
type CreateAppointmentRequest struct {
	Specialty    string    `json:"specialty" validate:"required"`
	SpecialistID uuid.UUID `json:"specialist_id" validate:"required"`
	ISODate      string    `json:"iso_date" validate:"required,iso_date"`
	Time         string    `json:"time" validate:"required,slot_time"`
	PatientEmail string    `json:"patient_email" validate:"omitempty,email"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

type ReviewAppointmentRequest struct {
	Review string `json:"review" validate:"required,min=3"`
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
}

// ListAppointmentsRequest mirrors the admin listing filters; every field
// is optional and parsed from query parameters.
type ListAppointmentsRequest struct {
	From      string `json:"from" validate:"omitempty,iso_date"`
	To        string `json:"to" validate:"omitempty,iso_date"`
	Specialty string `json:"specialty" validate:"omitempty"`
	Status    string `json:"status" validate:"omitempty,oneof=solicitado confirmado cancelado realizado archivado"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             uuid.UUID `json:"id"`
	PatientID      uuid.UUID `json:"patient_id"`
	PatientName    string    `json:"patient_name,omitempty"`
	SpecialistID   uuid.UUID `json:"specialist_id"`
	SpecialistName string    `json:"specialist_name,omitempty"`
	Specialty      string    `json:"specialty"`
	ISODate        string    `json:"iso_date"`
	Time           string    `json:"time"`
	Status         string    `json:"status"`
	CancelReason   string    `json:"cancel_reason,omitempty"`
	Review         string    `json:"review,omitempty"`
	Rating         *int      `json:"rating,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
