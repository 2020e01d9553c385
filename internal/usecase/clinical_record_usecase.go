package usecase

import (
	"context"
	"errors"

	"clinica-turnos/internal/converter"
	"clinica-turnos/internal/delivery/dto"
	"clinica-turnos/internal/domain/entity"
	"clinica-turnos/internal/domain/repository"
	"clinica-turnos/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound      = errors.New("clinical record not found")
	ErrRecordAlreadyExists = errors.New("appointment already has a clinical record")
	ErrVisitNotConfirmed   = errors.New("appointment is not in a confirmable state for a record")
)

// ClinicalRecordUsecase manages the historia clinica. Writing a record is
// how a specialist completes a visit: record and status change commit
// together or not at all.
type ClinicalRecordUsecase interface {
	Create(ctx context.Context, specialistID uuid.UUID, req *dto.CreateClinicalRecordRequest) (*dto.ClinicalRecordResponse, error)
	GetByAppointment(ctx context.Context, actorID uuid.UUID, actorRole string, appointmentID uuid.UUID) (*dto.ClinicalRecordResponse, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.ClinicalRecordListResponse, error)
	ListForSpecialist(ctx context.Context, specialistID uuid.UUID) (*dto.ClinicalRecordListResponse, error)
	MyPatients(ctx context.Context, specialistID uuid.UUID) (*dto.PatientSummaryListResponse, error)
}

type clinicalRecordUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	recordRepo         repository.ClinicalRecordRepository
	appointmentRepo    repository.AppointmentRepository
	userRepo           repository.UserRepository
	patientProfileRepo repository.PatientProfileRepository
	auditService       service.AuditService
}

func NewClinicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.ClinicalRecordRepository,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	patientProfileRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) ClinicalRecordUsecase {
	return &clinicalRecordUsecase{
		db:                 db,
		log:                log,
		recordRepo:         recordRepo,
		appointmentRepo:    appointmentRepo,
		userRepo:           userRepo,
		patientProfileRepo: patientProfileRepo,
		auditService:       auditService,
	}
}

func (u *clinicalRecordUsecase) Create(ctx context.Context, specialistID uuid.UUID, req *dto.CreateClinicalRecordRequest) (*dto.ClinicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.SpecialistID != specialistID {
		return nil, ErrNotYourAppointment
	}
	if !appointment.CanTransitionTo(entity.AppointmentStatusCompleted) {
		return nil, ErrVisitNotConfirmed
	}

	existing, err := u.recordRepo.FindByAppointmentID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to check existing record: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrRecordAlreadyExists
	}

	record := &entity.ClinicalRecord{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		SpecialistID:  appointment.SpecialistID,
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		Temperature:   req.Temperature,
		BloodPressure: req.BloodPressure,
		Diagnosis:     req.Diagnosis,
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		if isDuplicateKeyError(err, "appointment_id") {
			return nil, ErrRecordAlreadyExists
		}
		u.log.Warnf("Failed to create clinical record: %+v", err)
		return nil, err
	}

	// The visit is now realizado; the slot stays taken either way.
	appointment.Status = entity.AppointmentStatusCompleted
	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to complete appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &specialistID, entity.AuditActionRecordCreate,
		"clinical_record", record.ID.String(), record); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ClinicalRecordToResponse(record), nil
}

func (u *clinicalRecordUsecase) GetByAppointment(ctx context.Context, actorID uuid.UUID, actorRole string, appointmentID uuid.UUID) (*dto.ClinicalRecordResponse, error) {
	record, err := u.recordRepo.FindByAppointmentID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find clinical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	if actorRole != entity.RoleAdmin && record.PatientID != actorID && record.SpecialistID != actorID {
		return nil, ErrNotYourAppointment
	}

	return converter.ClinicalRecordToResponse(record), nil
}

func (u *clinicalRecordUsecase) ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.ClinicalRecordListResponse, error) {
	records, err := u.recordRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list patient records: %+v", err)
		return nil, err
	}
	return &dto.ClinicalRecordListResponse{
		Records: converter.ClinicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

func (u *clinicalRecordUsecase) ListForSpecialist(ctx context.Context, specialistID uuid.UUID) (*dto.ClinicalRecordListResponse, error) {
	records, err := u.recordRepo.FindBySpecialistID(u.db.WithContext(ctx), specialistID)
	if err != nil {
		u.log.Warnf("Failed to list specialist records: %+v", err)
		return nil, err
	}
	return &dto.ClinicalRecordListResponse{
		Records: converter.ClinicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

// MyPatients lists the distinct patients a specialist has written records
// for, with a visit count per patient.
func (u *clinicalRecordUsecase) MyPatients(ctx context.Context, specialistID uuid.UUID) (*dto.PatientSummaryListResponse, error) {
	db := u.db.WithContext(ctx)

	records, err := u.recordRepo.FindBySpecialistID(db, specialistID)
	if err != nil {
		u.log.Warnf("Failed to list specialist records: %+v", err)
		return nil, err
	}

	visits := make(map[uuid.UUID]int)
	order := make([]uuid.UUID, 0)
	for _, record := range records {
		if _, seen := visits[record.PatientID]; !seen {
			order = append(order, record.PatientID)
		}
		visits[record.PatientID]++
	}

	users, err := u.userRepo.FindByIDs(db, order)
	if err != nil {
		u.log.Warnf("Failed to load patient users: %+v", err)
		return nil, err
	}
	userByID := make(map[uuid.UUID]entity.User, len(users))
	for _, user := range users {
		userByID[user.ID] = user
	}

	patients := make([]dto.PatientSummaryResponse, 0, len(order))
	for _, patientID := range order {
		summary := dto.PatientSummaryResponse{
			UserID: patientID,
			Visits: visits[patientID],
		}
		if user, ok := userByID[patientID]; ok {
			summary.FullName = user.FullName()
			summary.Email = user.Email
			summary.AvatarURL = user.AvatarURL
		}
		// Best effort: a missing profile leaves DNI and insurance empty
		profile, err := u.patientProfileRepo.FindByUserID(db, patientID)
		if err != nil {
			u.log.Warnf("Failed to load patient profile: %+v", err)
			return nil, err
		}
		if profile != nil {
			summary.DNI = profile.DNI
			summary.Age = profile.Age
			summary.Insurance = profile.Insurance
		}
		patients = append(patients, summary)
	}

	return &dto.PatientSummaryListResponse{
		Patients: patients,
		Total:    len(patients),
	}, nil
}
