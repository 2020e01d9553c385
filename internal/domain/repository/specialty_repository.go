package repository

import (
	"clinica-turnos/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialtyRepository interface {
	FindAll(db *gorm.DB) ([]entity.Specialty, error)
	FindByCode(db *gorm.DB, code string) (*entity.Specialty, error)
}
