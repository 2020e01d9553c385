package repository

import (
	"clinica-turnos/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpecialistProfileRepository interface {
	Create(db *gorm.DB, profile *entity.SpecialistProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.SpecialistProfile, error)
	FindAllActive(db *gorm.DB) ([]entity.SpecialistProfile, error)
	FindBySpecialty(db *gorm.DB, specialty string) ([]entity.SpecialistProfile, error)
	Update(db *gorm.DB, profile *entity.SpecialistProfile) error
}
