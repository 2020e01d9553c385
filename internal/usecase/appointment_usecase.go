package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinica-turnos/internal/converter"
	"clinica-turnos/internal/delivery/dto"
	"clinica-turnos/internal/domain/entity"
	"clinica-turnos/internal/domain/repository"
	"clinica-turnos/internal/scheduling"
	"clinica-turnos/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotTaken           = errors.New("slot is already taken")
	ErrSlotNotBookable     = errors.New("slot is outside the bookable grid")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrNotYourAppointment  = errors.New("appointment belongs to another user")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrSpecialistNotFound  = errors.New("specialist not found")
	ErrAlreadyReviewed     = errors.New("appointment already reviewed")
	ErrInvalidMonth        = errors.New("invalid month, use YYYY-MM")
)

type AppointmentUsecase interface {
	// Create is the authoritative end of the booking flow: the slot is
	// re-checked against the live schedule inside the transaction,
	// regardless of what the wizard showed.
	Create(ctx context.Context, actorID uuid.UUID, actorRole string, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	MonthAvailability(ctx context.Context, specialistID uuid.UUID, month string) (*dto.AvailabilityResponse, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListForSpecialist(ctx context.Context, specialistID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListFiltered(ctx context.Context, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error)
	Confirm(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, reason string) (*dto.AppointmentResponse, error)
	Archive(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*dto.AppointmentResponse, error)
	Review(ctx context.Context, patientID uuid.UUID, id uuid.UUID, req *dto.ReviewAppointmentRequest) (*dto.AppointmentResponse, error)

	// BookedTimes feeds the booking wizard's blocked-slot refresh.
	BookedTimes(ctx context.Context, specialistID uuid.UUID) ([]time.Time, error)
}

type appointmentUsecase struct {
	db                    *gorm.DB
	log                   *logrus.Logger
	cal                   scheduling.Calendar
	appointmentRepo       repository.AppointmentRepository
	patientProfileRepo    repository.PatientProfileRepository
	specialistProfileRepo repository.SpecialistProfileRepository
	auditService          service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cal scheduling.Calendar,
	appointmentRepo repository.AppointmentRepository,
	patientProfileRepo repository.PatientProfileRepository,
	specialistProfileRepo repository.SpecialistProfileRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                    db,
		log:                   log,
		cal:                   cal,
		appointmentRepo:       appointmentRepo,
		patientProfileRepo:    patientProfileRepo,
		specialistProfileRepo: specialistProfileRepo,
		auditService:          auditService,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, actorID uuid.UUID, actorRole string, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	scheduledAt, err := u.parseSlot(req.ISODate, req.Time)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	specialist, err := u.specialistProfileRepo.FindByUserID(tx, req.SpecialistID)
	if err != nil {
		u.log.Warnf("Failed to find specialist: %+v", err)
		return nil, err
	}
	if specialist == nil {
		return nil, ErrSpecialistNotFound
	}

	patientID, err := u.resolvePatient(tx, actorID, actorRole, req.PatientEmail)
	if err != nil {
		return nil, err
	}

	// Commit-time conflict re-check. The wizard's availability view is
	// advisory; two users can race past it.
	conflict, err := u.appointmentRepo.FindConflict(tx, req.SpecialistID, scheduledAt)
	if err != nil {
		u.log.Warnf("Failed conflict check: %+v", err)
		return nil, err
	}
	if conflict != nil {
		return nil, ErrSlotTaken
	}

	appointment := &entity.Appointment{
		PatientID:    patientID,
		SpecialistID: req.SpecialistID,
		Specialty:    req.Specialty,
		ScheduledAt:  scheduledAt,
		Status:       entity.AppointmentStatusRequested,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionAppointmentCreate,
		"appointment", appointment.ID.String(), appointment); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment, u.cal.Location), nil
}

// resolvePatient decides whose appointment this is. Admins book on behalf
// of a patient identified by email; everyone else books for themselves.
func (u *appointmentUsecase) resolvePatient(tx *gorm.DB, actorID uuid.UUID, actorRole, patientEmail string) (uuid.UUID, error) {
	if actorRole == entity.RoleAdmin && patientEmail != "" {
		profile, err := u.patientProfileRepo.FindByEmail(tx, patientEmail)
		if err != nil {
			u.log.Warnf("Failed to find patient by email: %+v", err)
			return uuid.Nil, err
		}
		if profile == nil {
			return uuid.Nil, ErrPatientNotFound
		}
		return profile.UserID, nil
	}

	profile, err := u.patientProfileRepo.FindByUserID(tx, actorID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return uuid.Nil, err
	}
	if profile == nil {
		return uuid.Nil, ErrPatientNotFound
	}
	return profile.UserID, nil
}

// parseSlot validates the date+time pair against the slot grid before
// touching the database.
func (u *appointmentUsecase) parseSlot(isoDate, hhmm string) (time.Time, error) {
	scheduledAt, err := time.ParseInLocation("2006-01-02 15:04", isoDate+" "+hhmm, u.cal.Location)
	if err != nil {
		return time.Time{}, ErrSlotNotBookable
	}
	if !u.cal.IsSlotAvailable(scheduledAt, hhmm, nil) {
		return time.Time{}, ErrSlotNotBookable
	}
	if h := scheduledAt.Hour(); h < u.cal.OpenHour || h >= u.cal.CloseHour {
		return time.Time{}, ErrSlotNotBookable
	}
	return scheduledAt, nil
}

func (u *appointmentUsecase) MonthAvailability(ctx context.Context, specialistID uuid.UUID, month string) (*dto.AvailabilityResponse, error) {
	anchor, err := time.ParseInLocation("2006-01", month, u.cal.Location)
	if err != nil {
		return nil, ErrInvalidMonth
	}

	db := u.db.WithContext(ctx)
	specialist, err := u.specialistProfileRepo.FindByUserID(db, specialistID)
	if err != nil {
		u.log.Warnf("Failed to find specialist: %+v", err)
		return nil, err
	}
	if specialist == nil {
		return nil, ErrSpecialistNotFound
	}

	now := time.Now()
	booked, err := u.appointmentRepo.FindBookedTimes(db, specialistID, u.cal.MonthStart(now))
	if err != nil {
		u.log.Warnf("Failed to load booked times: %+v", err)
		return nil, err
	}
	blocked := u.cal.ComputeBlockedSlots(booked)

	days := u.cal.GenerateMonth(anchor, now)
	out := make([]dto.AvailabilityDay, len(days))
	for i, d := range days {
		var slots []string
		if !d.Past {
			slots = u.cal.AvailableSlots(d.Date, blocked)
		}
		out[i] = dto.AvailabilityDay{
			ISODate:    d.ISODate,
			LongLabel:  d.LongLabel,
			ShortLabel: d.ShortLabel,
			Past:       d.Past,
			Slots:      slots,
		}
	}

	return &dto.AvailabilityResponse{Month: month, Days: out}, nil
}

func (u *appointmentUsecase) ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list patient appointments: %+v", err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments, u.cal.Location),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListForSpecialist(ctx context.Context, specialistID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindBySpecialistID(u.db.WithContext(ctx), specialistID)
	if err != nil {
		u.log.Warnf("Failed to list specialist appointments: %+v", err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments, u.cal.Location),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListFiltered(ctx context.Context, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error) {
	filter := &entity.AppointmentFilter{
		From:      req.From,
		To:        req.To,
		Specialty: req.Specialty,
		Status:    req.Status,
	}
	appointments, err := u.appointmentRepo.FindFiltered(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments, u.cal.Location),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) Confirm(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, actorID, id, entity.AppointmentStatusConfirmed, entity.AuditActionAppointmentConfirm,
		func(a *entity.Appointment) error {
			if a.SpecialistID != actorID {
				return ErrNotYourAppointment
			}
			return nil
		})
}

func (u *appointmentUsecase) Cancel(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, reason string) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, actorID, id, entity.AppointmentStatusCancelled, entity.AuditActionAppointmentCancel,
		func(a *entity.Appointment) error {
			// Admins may cancel any turno; patients and specialists only
			// their own.
			if actorRole != entity.RoleAdmin && a.PatientID != actorID && a.SpecialistID != actorID {
				return ErrNotYourAppointment
			}
			a.CancelReason = reason
			return nil
		})
}

func (u *appointmentUsecase) Archive(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, actorID, id, entity.AppointmentStatusArchived, entity.AuditActionAppointmentArchive,
		func(a *entity.Appointment) error {
			if a.SpecialistID != actorID {
				return ErrNotYourAppointment
			}
			return nil
		})
}

// transition loads, authorizes, moves and persists a status change inside
// one transaction, auditing the old and new values.
func (u *appointmentUsecase) transition(
	ctx context.Context,
	actorID uuid.UUID,
	id uuid.UUID,
	next entity.AppointmentStatus,
	auditAction string,
	authorize func(*entity.Appointment) error,
) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := authorize(appointment); err != nil {
		return nil, err
	}

	oldStatus := appointment.Status
	if !appointment.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}
	appointment.Status = next

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, auditAction,
		"appointment", appointment.ID.String(),
		map[string]interface{}{"status": oldStatus},
		map[string]interface{}{"status": next}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment, u.cal.Location), nil
}

func (u *appointmentUsecase) Review(ctx context.Context, patientID uuid.UUID, id uuid.UUID, req *dto.ReviewAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.PatientID != patientID {
		return nil, ErrNotYourAppointment
	}
	if !appointment.IsCompleted() {
		return nil, ErrInvalidTransition
	}
	if appointment.Rating != nil {
		return nil, ErrAlreadyReviewed
	}

	appointment.Review = req.Review
	rating := req.Rating
	appointment.Rating = &rating

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to save review: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &patientID, entity.AuditActionAppointmentReview,
		"appointment", appointment.ID.String(), nil,
		map[string]interface{}{"rating": rating}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment, u.cal.Location), nil
}

func (u *appointmentUsecase) BookedTimes(ctx context.Context, specialistID uuid.UUID) ([]time.Time, error) {
	from := u.cal.MonthStart(time.Now())
	times, err := u.appointmentRepo.FindBookedTimes(u.db.WithContext(ctx), specialistID, from)
	if err != nil {
		return nil, fmt.Errorf("load booked times: %w", err)
	}
	return times, nil
}
