package repository

import (
	"errors"

	"clinica-turnos/internal/domain/entity"
	domainRepo "clinica-turnos/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientProfileRepository struct{}

func NewPatientProfileRepository() domainRepo.PatientProfileRepository {
	return &patientProfileRepository{}
}

func (r *patientProfileRepository) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	return db.Create(profile).Error
}

func (r *patientProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// FindByEmail resolves a patient profile through the users table. Used by
// the admin booking flow where the patient is identified by email.
func (r *patientProfileRepository) FindByEmail(db *gorm.DB, email string) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := db.
		Joins("JOIN users ON users.id = patient_profiles.user_id").
		Where("users.email = ?", email).
		Preload("User").
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *patientProfileRepository) Update(db *gorm.DB, profile *entity.PatientProfile) error {
	return db.Omit("User").Save(profile).Error
}
