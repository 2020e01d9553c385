package entity

// Role represents a user role in the system.
// Roles are assigned once at registration and never inferred from
// profile fields.
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin      = 1
	RoleIDSpecialist = 2
	RoleIDPatient    = 3
)

// Role name constants
const (
	RoleAdmin      = "admin"
	RoleSpecialist = "especialista"
	RolePatient    = "paciente"
)

// RoleNameByID maps a role ID to its name. Unknown IDs map to patient,
// the least-privileged role.
func RoleNameByID(id int) string {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDSpecialist:
		return RoleSpecialist
	default:
		return RolePatient
	}
}
