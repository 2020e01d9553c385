package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of a turno
type AppointmentStatus string

const (
	AppointmentStatusRequested AppointmentStatus = "solicitado"
	AppointmentStatusConfirmed AppointmentStatus = "confirmado"
	AppointmentStatusCancelled AppointmentStatus = "cancelado"
	AppointmentStatusCompleted AppointmentStatus = "realizado"
	AppointmentStatusArchived  AppointmentStatus = "archivado"
)

// Appointment represents a booked turno between a patient and a specialist
type Appointment struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	SpecialistID uuid.UUID         `gorm:"type:uuid;not null;index" json:"specialist_id"`
	Specialty    string            `gorm:"type:varchar(100);not null;index" json:"specialty"`
	ScheduledAt  time.Time         `gorm:"type:timestamptz;not null;index" json:"scheduled_at"`
	Status       AppointmentStatus `gorm:"type:varchar(20);not null;default:'solicitado';index" json:"status"`
	CancelReason string            `gorm:"type:text" json:"cancel_reason,omitempty"`
	Review       string            `gorm:"type:text" json:"review,omitempty"`
	Rating       *int              `gorm:"type:smallint" json:"rating,omitempty"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient    PatientProfile    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Specialist SpecialistProfile `gorm:"foreignKey:SpecialistID" json:"specialist,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment was cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCompleted checks if the visit already happened
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted || a.Status == AppointmentStatusArchived
}

// Blocks reports whether this appointment still occupies its slot.
// Cancelled appointments free the slot; every other state keeps it taken.
func (a *Appointment) Blocks() bool {
	return a.Status != AppointmentStatusCancelled
}

// CanTransitionTo enforces the turno lifecycle:
// solicitado -> confirmado | cancelado
// confirmado -> realizado | cancelado
// realizado  -> archivado
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case AppointmentStatusRequested:
		return next == AppointmentStatusConfirmed || next == AppointmentStatusCancelled
	case AppointmentStatusConfirmed:
		return next == AppointmentStatusCompleted || next == AppointmentStatusCancelled
	case AppointmentStatusCompleted:
		return next == AppointmentStatusArchived
	default:
		return false
	}
}
