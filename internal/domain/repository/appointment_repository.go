package repository

import (
	"time"

	"clinica-turnos/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindBySpecialistID(db *gorm.DB, specialistID uuid.UUID) ([]entity.Appointment, error)
	// FindBookedTimes returns the scheduled timestamps of every
	// slot-blocking appointment the specialist has from the given instant on.
	FindBookedTimes(db *gorm.DB, specialistID uuid.UUID, from time.Time) ([]time.Time, error)
	// FindConflict returns the appointment occupying the exact timestamp
	// for the specialist, or nil. Used for the commit-time re-check.
	FindConflict(db *gorm.DB, specialistID uuid.UUID, at time.Time) (*entity.Appointment, error)
	FindFiltered(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	CountPerDay(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.DayCount, error)
}
