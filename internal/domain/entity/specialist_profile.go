package entity

import "github.com/google/uuid"

// SpecialistProfile represents specialist-specific profile data
type SpecialistProfile struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	DNI           string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"dni"`
	Age           int       `gorm:"not null" json:"age"`
	Specialty     string    `gorm:"type:varchar(100);not null;index" json:"specialty"`
	LicenseNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Biography     string    `gorm:"type:text" json:"biography,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:SpecialistID" json:"appointments,omitempty"`
}

func (SpecialistProfile) TableName() string {
	return "specialist_profiles"
}
