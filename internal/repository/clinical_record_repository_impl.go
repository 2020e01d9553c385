package repository

import (
	"errors"

	"clinica-turnos/internal/domain/entity"
	domainRepo "clinica-turnos/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clinicalRecordRepository struct{}

func NewClinicalRecordRepository() domainRepo.ClinicalRecordRepository {
	return &clinicalRecordRepository{}
}

func (r *clinicalRecordRepository) Create(db *gorm.DB, record *entity.ClinicalRecord) error {
	return db.Create(record).Error
}

func (r *clinicalRecordRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.ClinicalRecord, error) {
	var record entity.ClinicalRecord
	err := db.Where("appointment_id = ?", appointmentID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *clinicalRecordRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.ClinicalRecord, error) {
	var records []entity.ClinicalRecord
	err := db.Preload("Appointment").
		Where("patient_id = ?", patientID).
		Order("recorded_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *clinicalRecordRepository) FindBySpecialistID(db *gorm.DB, specialistID uuid.UUID) ([]entity.ClinicalRecord, error) {
	var records []entity.ClinicalRecord
	err := db.Preload("Appointment").
		Where("specialist_id = ?", specialistID).
		Order("recorded_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
