package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FirstName string    `gorm:"type:varchar(120);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(120);not null" json:"last_name"`
	// Profiles carry up to two images: full avatar and a thumbnail.
	AvatarURL    string    `gorm:"type:text" json:"avatar_url,omitempty"`
	AvatarAltURL string    `gorm:"type:text" json:"avatar_alt_url,omitempty"`
	IsActive     *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role              Role               `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	SpecialistProfile *SpecialistProfile `gorm:"foreignKey:UserID" json:"specialist_profile,omitempty"`
	PatientProfile    *PatientProfile    `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// FullName joins first and last name, falling back to the email when both
// are empty (legacy rows imported without names).
func (u *User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Email
	}
	return name
}
