package repository

import (
	"errors"
	"time"

	"clinica-turnos/internal/domain/entity"
	domainRepo "clinica-turnos/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient.User").Preload("Specialist.User").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Specialist.User").
		Where("patient_id = ?", patientID).
		Order("scheduled_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindBySpecialistID(db *gorm.DB, specialistID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").
		Where("specialist_id = ?", specialistID).
		Order("scheduled_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindBookedTimes(db *gorm.DB, specialistID uuid.UUID, from time.Time) ([]time.Time, error) {
	var times []time.Time
	err := db.Model(&entity.Appointment{}).
		Where("specialist_id = ? AND scheduled_at >= ? AND status != ?",
			specialistID, from, entity.AppointmentStatusCancelled).
		Order("scheduled_at ASC").
		Pluck("scheduled_at", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

func (r *appointmentRepository) FindConflict(db *gorm.DB, specialistID uuid.UUID, at time.Time) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Where("specialist_id = ? AND scheduled_at = ? AND status != ?",
			specialistID, at, entity.AppointmentStatusCancelled).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindFiltered(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Model(&entity.Appointment{})

	if filter != nil {
		if filter.From != "" {
			query = query.Where("scheduled_at >= ?", filter.From)
		}
		if filter.To != "" {
			query = query.Where("scheduled_at < (?::date + 1)", filter.To)
		}
		if filter.Specialty != "" {
			query = query.Where("specialty = ?", filter.Specialty)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.PatientID != "" {
			query = query.Where("patient_id = ?", filter.PatientID)
		}
		if filter.SpecialistID != "" {
			query = query.Where("specialist_id = ?", filter.SpecialistID)
		}
	}

	var appointments []entity.Appointment
	err := query.Order("scheduled_at DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient", "Specialist").Save(appointment).Error
}

func (r *appointmentRepository) CountPerDay(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.DayCount, error) {
	query := db.Model(&entity.Appointment{}).
		Select("to_char(scheduled_at::date, 'YYYY-MM-DD') as date, COUNT(*) as total")

	if filter != nil {
		if filter.From != "" {
			query = query.Where("scheduled_at >= ?", filter.From)
		}
		if filter.To != "" {
			query = query.Where("scheduled_at < (?::date + 1)", filter.To)
		}
		if filter.Specialty != "" {
			query = query.Where("specialty = ?", filter.Specialty)
		}
	}

	var counts []entity.DayCount
	err := query.Group("scheduled_at::date").Order("scheduled_at::date ASC").Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
