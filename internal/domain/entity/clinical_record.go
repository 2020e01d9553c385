package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClinicalRecord is the historia clinica entry a specialist writes when a
// visit is completed. One record per appointment.
type ClinicalRecord struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	PatientID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	SpecialistID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"specialist_id"`
	HeightCm      int             `gorm:"not null" json:"height_cm"`
	WeightKg      decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"weight_kg"`
	Temperature   decimal.Decimal `gorm:"type:decimal(4,1);not null" json:"temperature"`
	BloodPressure string          `gorm:"type:varchar(10);not null" json:"blood_pressure"` // "sys/dia"
	Diagnosis     string          `gorm:"type:text;not null" json:"diagnosis"`
	RecordedAt    time.Time       `gorm:"autoCreateTime;index" json:"recorded_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (ClinicalRecord) TableName() string {
	return "clinical_records"
}
