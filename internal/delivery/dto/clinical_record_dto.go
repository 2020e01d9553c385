package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateClinicalRecordRequest closes a confirmed visit: the specialist
// writes the vitals and diagnosis, and the appointment moves to realizado.
type CreateClinicalRecordRequest struct {
	AppointmentID uuid.UUID       `json:"appointment_id" validate:"required"`
	HeightCm      int             `json:"height_cm" validate:"required,gte=30,lte=250"`
	WeightKg      decimal.Decimal `json:"weight_kg" validate:"required"`
	Temperature   decimal.Decimal `json:"temperature" validate:"required"`
	BloodPressure string          `json:"blood_pressure" validate:"required,blood_pressure"`
	Diagnosis     string          `json:"diagnosis" validate:"required,min=3"`
}

// Response DTOs

type ClinicalRecordResponse struct {
	ID            uuid.UUID       `json:"id"`
	AppointmentID uuid.UUID       `json:"appointment_id"`
	PatientID     uuid.UUID       `json:"patient_id"`
	SpecialistID  uuid.UUID       `json:"specialist_id"`
	HeightCm      int             `json:"height_cm"`
	WeightKg      decimal.Decimal `json:"weight_kg"`
	Temperature   decimal.Decimal `json:"temperature"`
	BloodPressure string          `json:"blood_pressure"`
	Diagnosis     string          `json:"diagnosis"`
	RecordedAt    time.Time       `json:"recorded_at"`
}

type ClinicalRecordListResponse struct {
	Records []ClinicalRecordResponse `json:"records"`
	Total   int                      `json:"total"`
}

// PatientSummaryResponse is one row of a specialist's "my patients"
// view: patients the specialist has already seen at least once.
type PatientSummaryResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	DNI       string    `json:"dni,omitempty"`
	Age       int       `json:"age,omitempty"`
	Insurance string    `json:"insurance,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Visits    int       `json:"visits"`
}

type PatientSummaryListResponse struct {
	Patients []PatientSummaryResponse `json:"patients"`
	Total    int                      `json:"total"`
}
