package repository

import (
	"clinica-turnos/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClinicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.ClinicalRecord) error
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.ClinicalRecord, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.ClinicalRecord, error)
	FindBySpecialistID(db *gorm.DB, specialistID uuid.UUID) ([]entity.ClinicalRecord, error)
}
