package entity

// Specialty is the catalog of medical specialties patients can book.
type Specialty struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"code"`
	Name        string `gorm:"type:varchar(150);not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (Specialty) TableName() string {
	return "specialties"
}
