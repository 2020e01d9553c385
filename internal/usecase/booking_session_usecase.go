package usecase

import (
	"context"
	"time"

	"clinica-turnos/internal/delivery/dto"
	"clinica-turnos/internal/domain/entity"
	"clinica-turnos/internal/scheduling"
	"clinica-turnos/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BookingSessionUsecase drives the 3-step booking wizard over stateless
// HTTP: the wizard lives server side, keyed by a session ID, and every
// mutation returns the full state for the client to render.
type BookingSessionUsecase interface {
	Start(ctx context.Context, userID uuid.UUID, role string) (*dto.BookingSessionResponse, error)
	Get(ctx context.Context, userID, sessionID uuid.UUID) (*dto.BookingSessionResponse, error)
	Next(ctx context.Context, userID, sessionID uuid.UUID) (*dto.BookingSessionResponse, error)
	Back(ctx context.Context, userID, sessionID uuid.UUID) (*dto.BookingSessionResponse, error)
	SelectSpecialty(ctx context.Context, userID, sessionID uuid.UUID, req *dto.SelectSpecialtyRequest) (*dto.BookingSessionResponse, error)
	SelectSpecialist(ctx context.Context, userID, sessionID uuid.UUID, req *dto.SelectSpecialistRequest) (*dto.BookingSessionResponse, error)
	SelectDay(ctx context.Context, userID, sessionID uuid.UUID, req *dto.SelectDayRequest) (*dto.BookingSessionResponse, error)
	SelectTime(ctx context.Context, userID, sessionID uuid.UUID, req *dto.SelectTimeRequest) (*dto.BookingSessionResponse, error)
	SetPatientEmail(ctx context.Context, userID, sessionID uuid.UUID, req *dto.SetPatientEmailRequest) (*dto.BookingSessionResponse, error)
	ChangeMonth(ctx context.Context, userID, sessionID uuid.UUID, req *dto.ChangeMonthRequest) (*dto.BookingSessionResponse, error)
	Swipe(ctx context.Context, userID, sessionID uuid.UUID, req *dto.SwipeRequest) (*dto.BookingSessionResponse, error)
	Submit(ctx context.Context, userID uuid.UUID, role string, sessionID uuid.UUID) (*dto.BookingSubmitResponse, error)
	Close(ctx context.Context, userID, sessionID uuid.UUID) error
}

type bookingSessionUsecase struct {
	log           *logrus.Logger
	cal           scheduling.Calendar
	store         *service.BookingSessionStore
	appointmentUC AppointmentUsecase
}

func NewBookingSessionUsecase(
	log *logrus.Logger,
	cal scheduling.Calendar,
	store *service.BookingSessionStore,
	appointmentUC AppointmentUsecase,
) BookingSessionUsecase {
	return &bookingSessionUsecase{
		log:           log,
		cal:           cal,
		store:         store,
		appointmentUC: appointmentUC,
	}
}

func (u *bookingSessionUsecase) Start(ctx context.Context, userID uuid.UUID, role string) (*dto.BookingSessionResponse, error) {
	wizard := scheduling.NewWizard(u.cal, slotSource{u.appointmentUC}, nil)
	wizard.RequirePatientEmail = role == entity.RoleAdmin
	wizard.Open()

	sessionID := u.store.Put(userID, wizard)
	return snapshot(sessionID, wizard), nil
}

func (u *bookingSessionUsecase) Get(ctx context.Context, userID, sessionID uuid.UUID) (*dto.BookingSessionResponse, error) {
	return u.mutate(userID, sessionID, func(w *scheduling.Wizard) error { return nil })
}

func (u *bookingSessionUsecase) Next(ctx context.Context, userID, sessionID uuid.UUID) (*dto.BookingSessionResponse, error) {
	return u.mutate(userID, sessionID, func(w *scheduling.Wizard) error { return w.Next() })
}

func (u *bookingSessionUsecase) Back(ctx context.Context, userID, sessionID uuid.UUID) (*dto.BookingSessionResponse, error) {
	return u.mutate(userID, sessionID, func(w *scheduling.Wizard) error {
		w.Back()
		return nil
	})
}

func (u *bookingSessionUsecase) SelectSpecialty(ctx context.Context, userID, sessionID uuid.UUID, req *dto.SelectSpecialtyRequest) (*dto.BookingSessionResponse, error) {
	return u.mutate(userID, sessionID, func(w *scheduling.Wizard) error {
		w.SelectSpecialty(req.Specialty)
		return nil
	})
}

func (u *bookingSessionUsecase) SelectSpecialist(ctx context.Context, userID, sessionID uuid.UUID, req *dto.SelectSpecialistRequest) (*dto.BookingSessionResponse, error) {
	return u.mutate(userID, sessionID, func(w *scheduling.Wizard) error {
		if err := w.SelectSpecialist(ctx, req.SpecialistID); err != nil {
			u.log.Warnf("Failed to refresh blocked slots: %+v", err)
			return err
		}
		return nil
	})
}

func (u *bookingSessionUsecase) SelectDay(ctx context.Context, userID, sessionID uuid.UUID, req *dto.SelectDayRequest) (*dto.BookingSessionResponse, error) {
	return u.mutate(userID, sessionID, func(w *scheduling.Wizard) error {
		w.SelectDay(req.DayIndex)
		return nil
	})
}

func (u *bookingSessionUsecase) SelectTime(ctx context.Context, userID, sessionID uuid.UUID, req *dto.SelectTimeRequest) (*dto.BookingSessionResponse, error) {
	return u.mutate(userID, sessionID, func(w *scheduling.Wizard) error {
		return w.SelectTime(req.Time)
	})
}

func (u *bookingSessionUsecase) SetPatientEmail(ctx context.Context, userID, sessionID uuid.UUID, req *dto.SetPatientEmailRequest) (*dto.BookingSessionResponse, error) {
	return u.mutate(userID, sessionID, func(w *scheduling.Wizard) error {
		w.SetPatientEmail(req.PatientEmail)
		return nil
	})
}

func (u *bookingSessionUsecase) ChangeMonth(ctx context.Context, userID, sessionID uuid.UUID, req *dto.ChangeMonthRequest) (*dto.BookingSessionResponse, error) {
	return u.mutate(userID, sessionID, func(w *scheduling.Wizard) error {
		w.ChangeMonth(req.Delta)
		return nil
	})
}

func (u *bookingSessionUsecase) Swipe(ctx context.Context, userID, sessionID uuid.UUID, req *dto.SwipeRequest) (*dto.BookingSessionResponse, error) {
	return u.mutate(userID, sessionID, func(w *scheduling.Wizard) error {
		w.SwipeMonth(req.DistancePx)
		return nil
	})
}

func (u *bookingSessionUsecase) Submit(ctx context.Context, userID uuid.UUID, role string, sessionID uuid.UUID) (*dto.BookingSubmitResponse, error) {
	var result *dto.BookingSubmitResponse

	err := u.store.With(sessionID, userID, func(w *scheduling.Wizard) error {
		request, err := w.Submit()
		if err != nil {
			return err
		}

		appointment, err := u.appointmentUC.Create(ctx, userID, role, &dto.CreateAppointmentRequest{
			Specialty:    request.Specialty,
			SpecialistID: request.SpecialistID,
			ISODate:      request.ISODate,
			Time:         request.Time,
			PatientEmail: request.PatientEmail,
		})
		if err != nil {
			// Leave the wizard on step 3 with the draft intact so the
			// user can pick another slot and retry.
			return err
		}

		w.Close()
		result = &dto.BookingSubmitResponse{
			Request:     request,
			Appointment: appointment,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.store.Delete(sessionID)
	return result, nil
}

func (u *bookingSessionUsecase) Close(ctx context.Context, userID, sessionID uuid.UUID) error {
	err := u.store.With(sessionID, userID, func(w *scheduling.Wizard) error {
		w.Close()
		return nil
	})
	if err != nil {
		return err
	}
	u.store.Delete(sessionID)
	return nil
}

func (u *bookingSessionUsecase) mutate(userID, sessionID uuid.UUID, fn func(*scheduling.Wizard) error) (*dto.BookingSessionResponse, error) {
	var response *dto.BookingSessionResponse
	err := u.store.With(sessionID, userID, func(w *scheduling.Wizard) error {
		if err := fn(w); err != nil {
			return err
		}
		response = snapshot(sessionID, w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// slotSource adapts the appointment usecase to the wizard's collaborator
// interface without creating an import cycle in the other direction.
type slotSource struct {
	appointmentUC AppointmentUsecase
}

func (s slotSource) BookedTimes(ctx context.Context, specialistID uuid.UUID) ([]time.Time, error) {
	return s.appointmentUC.BookedTimes(ctx, specialistID)
}

func snapshot(sessionID uuid.UUID, w *scheduling.Wizard) *dto.BookingSessionResponse {
	days := w.Days()
	out := make([]dto.BookingSessionDay, len(days))
	for i, d := range days {
		out[i] = dto.BookingSessionDay{
			ISODate:    d.ISODate,
			LongLabel:  d.LongLabel,
			ShortLabel: d.ShortLabel,
			Past:       d.Past,
		}
	}

	return &dto.BookingSessionResponse{
		SessionID:    sessionID,
		Open:         w.IsOpen(),
		Step:         w.Step(),
		Month:        w.MonthBase().Format("2006-01"),
		Days:         out,
		ActiveDay:    w.ActiveDay(),
		VisibleSlots: w.VisibleSlots(),
		Draft:        w.Draft(),
	}
}
