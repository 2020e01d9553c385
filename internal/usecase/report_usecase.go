package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"clinica-turnos/internal/converter"
	"clinica-turnos/internal/delivery/dto"
	"clinica-turnos/internal/domain/entity"
	"clinica-turnos/internal/domain/repository"
	"clinica-turnos/internal/scheduling"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// utf8BOM makes Excel detect the encoding when opening the export.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReportUsecase serves the admin dashboard: appointment volumes per day,
// the completed-visit listing and the users CSV export.
type ReportUsecase interface {
	AppointmentsPerDay(ctx context.Context, from, to, specialty string) (*dto.AppointmentsPerDayResponse, error)
	CompletedAppointments(ctx context.Context, from, to string) (*dto.AppointmentListResponse, error)
	RecentAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error)
	ExportUsersCSV(ctx context.Context) ([]byte, error)
}

type reportUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	cal             scheduling.Calendar
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
	auditLogRepo    repository.AuditLogRepository
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cal scheduling.Calendar,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	auditLogRepo repository.AuditLogRepository,
) ReportUsecase {
	return &reportUsecase{
		db:              db,
		log:             log,
		cal:             cal,
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		auditLogRepo:    auditLogRepo,
	}
}

func (u *reportUsecase) AppointmentsPerDay(ctx context.Context, from, to, specialty string) (*dto.AppointmentsPerDayResponse, error) {
	counts, err := u.appointmentRepo.CountPerDay(u.db.WithContext(ctx), &entity.AppointmentFilter{
		From:      from,
		To:        to,
		Specialty: specialty,
	})
	if err != nil {
		u.log.Warnf("Failed to count appointments per day: %+v", err)
		return nil, err
	}

	days := make([]dto.DayCountResponse, len(counts))
	for i, c := range counts {
		days[i] = dto.DayCountResponse{Date: c.Date, Total: c.Total}
	}

	return &dto.AppointmentsPerDayResponse{From: from, To: to, Days: days}, nil
}

// CompletedAppointments lists the realizados in a range, enriched with
// patient and specialist names. Enrichment is best effort: rows whose
// users were deleted still appear, just without names.
func (u *reportUsecase) CompletedAppointments(ctx context.Context, from, to string) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	appointments, err := u.appointmentRepo.FindFiltered(db, &entity.AppointmentFilter{
		From:   from,
		To:     to,
		Status: string(entity.AppointmentStatusCompleted),
	})
	if err != nil {
		u.log.Warnf("Failed to list completed appointments: %+v", err)
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(appointments)*2)
	seen := make(map[uuid.UUID]bool)
	for _, a := range appointments {
		for _, id := range []uuid.UUID{a.PatientID, a.SpecialistID} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	nameByID := make(map[uuid.UUID]string)
	users, err := u.userRepo.FindByIDs(db, ids)
	if err != nil {
		u.log.Warnf("Failed to enrich completed listing: %+v", err)
	} else {
		for _, user := range users {
			nameByID[user.ID] = user.FullName()
		}
	}

	responses := converter.AppointmentsToResponses(appointments, u.cal.Location)
	for i := range responses {
		responses[i].PatientName = nameByID[responses[i].PatientID]
		responses[i].SpecialistName = nameByID[responses[i].SpecialistID]
	}

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

// RecentAuditLogs returns the latest audit trail entries, newest first
func (u *reportUsecase) RecentAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	logs, err := u.auditLogRepo.FindRecent(u.db.WithContext(ctx), limit)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}

// ExportUsersCSV renders every user as semicolon-separated CSV with a
// UTF-8 BOM, the format the clinic opens directly in Excel.
func (u *reportUsecase) ExportUsersCSV(ctx context.Context) ([]byte, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load users for export: %+v", err)
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	writer := csv.NewWriter(&buf)
	writer.Comma = ';'

	if err := writer.Write([]string{"id", "email", "nombre", "apellido", "rol", "activo", "dni", "especialidad", "obra_social"}); err != nil {
		return nil, err
	}

	for _, user := range users {
		active := true
		if user.IsActive != nil {
			active = *user.IsActive
		}

		var dni, specialty, insurance string
		if user.SpecialistProfile != nil {
			dni = user.SpecialistProfile.DNI
			specialty = user.SpecialistProfile.Specialty
		}
		if user.PatientProfile != nil {
			dni = user.PatientProfile.DNI
			insurance = user.PatientProfile.Insurance
		}

		row := []string{
			user.ID.String(),
			user.Email,
			user.FirstName,
			user.LastName,
			entity.RoleNameByID(user.RoleID),
			strconv.FormatBool(active),
			dni,
			specialty,
			insurance,
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
