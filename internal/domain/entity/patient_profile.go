package entity

import "github.com/google/uuid"

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	DNI       string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"dni"`
	Age       int       `gorm:"not null" json:"age"`
	Insurance string    `gorm:"type:varchar(150)" json:"insurance,omitempty"` // obra social

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
