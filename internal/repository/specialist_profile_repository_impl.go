package repository

import (
	"errors"

	"clinica-turnos/internal/domain/entity"
	domainRepo "clinica-turnos/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type specialistProfileRepository struct{}

func NewSpecialistProfileRepository() domainRepo.SpecialistProfileRepository {
	return &specialistProfileRepository{}
}

func (r *specialistProfileRepository) Create(db *gorm.DB, profile *entity.SpecialistProfile) error {
	return db.Create(profile).Error
}

func (r *specialistProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.SpecialistProfile, error) {
	var profile entity.SpecialistProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// FindAllActive returns specialists whose user account is active.
func (r *specialistProfileRepository) FindAllActive(db *gorm.DB) ([]entity.SpecialistProfile, error) {
	var profiles []entity.SpecialistProfile
	err := db.
		Joins("JOIN users ON users.id = specialist_profiles.user_id").
		Where("users.is_active = ?", true).
		Preload("User").
		Order("specialist_profiles.specialty ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *specialistProfileRepository) FindBySpecialty(db *gorm.DB, specialty string) ([]entity.SpecialistProfile, error) {
	var profiles []entity.SpecialistProfile
	err := db.
		Joins("JOIN users ON users.id = specialist_profiles.user_id").
		Where("users.is_active = ? AND specialist_profiles.specialty = ?", true, specialty).
		Preload("User").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *specialistProfileRepository) Update(db *gorm.DB, profile *entity.SpecialistProfile) error {
	return db.Omit("User").Save(profile).Error
}
