package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinica-turnos/internal/delivery/dto"
	"clinica-turnos/internal/delivery/http/middleware"
	"clinica-turnos/internal/scheduling"
	"clinica-turnos/internal/service"
	"clinica-turnos/internal/usecase"
	"clinica-turnos/pkg/response"
	"clinica-turnos/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// BookingSessionHandler exposes the booking wizard over HTTP. Every
// mutation returns the full session state; the client is a dumb renderer.
type BookingSessionHandler struct {
	sessionUsecase usecase.BookingSessionUsecase
	validator      *validator.CustomValidator
}

func NewBookingSessionHandler(sessionUsecase usecase.BookingSessionUsecase, validator *validator.CustomValidator) *BookingSessionHandler {
	return &BookingSessionHandler{
		sessionUsecase: sessionUsecase,
		validator:      validator,
	}
}

// Start opens a new wizard session for the caller
func (h *BookingSessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := h.identity(w, r)
	if !ok {
		return
	}

	session, err := h.sessionUsecase.Start(r.Context(), userID, role)
	if err != nil {
		response.InternalServerError(w, "Failed to start booking session")
		return
	}

	response.Success(w, http.StatusCreated, "Booking session started", session)
}

// Get returns the current session state
func (h *BookingSessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(userID, sessionID uuid.UUID, _ string) (interface{}, error) {
		return h.sessionUsecase.Get(r.Context(), userID, sessionID)
	})
}

// Next advances the wizard one step
func (h *BookingSessionHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(userID, sessionID uuid.UUID, _ string) (interface{}, error) {
		return h.sessionUsecase.Next(r.Context(), userID, sessionID)
	})
}

// Back retreats the wizard one step
func (h *BookingSessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(userID, sessionID uuid.UUID, _ string) (interface{}, error) {
		return h.sessionUsecase.Back(r.Context(), userID, sessionID)
	})
}

// SelectSpecialty records the specialty for step 1
func (h *BookingSessionHandler) SelectSpecialty(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectSpecialtyRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.run(w, r, func(userID, sessionID uuid.UUID, _ string) (interface{}, error) {
		return h.sessionUsecase.SelectSpecialty(r.Context(), userID, sessionID, &req)
	})
}

// SelectSpecialist records the specialist and refreshes availability
func (h *BookingSessionHandler) SelectSpecialist(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectSpecialistRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.run(w, r, func(userID, sessionID uuid.UUID, _ string) (interface{}, error) {
		return h.sessionUsecase.SelectSpecialist(r.Context(), userID, sessionID, &req)
	})
}

// SelectDay activates a calendar day by index
func (h *BookingSessionHandler) SelectDay(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectDayRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.run(w, r, func(userID, sessionID uuid.UUID, _ string) (interface{}, error) {
		return h.sessionUsecase.SelectDay(r.Context(), userID, sessionID, &req)
	})
}

// SelectTime records a slot for the active day
func (h *BookingSessionHandler) SelectTime(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectTimeRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.run(w, r, func(userID, sessionID uuid.UUID, _ string) (interface{}, error) {
		return h.sessionUsecase.SelectTime(r.Context(), userID, sessionID, &req)
	})
}

// SetPatientEmail records the target patient for the admin flow
func (h *BookingSessionHandler) SetPatientEmail(w http.ResponseWriter, r *http.Request) {
	var req dto.SetPatientEmailRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.run(w, r, func(userID, sessionID uuid.UUID, _ string) (interface{}, error) {
		return h.sessionUsecase.SetPatientEmail(r.Context(), userID, sessionID, &req)
	})
}

// ChangeMonth shifts the visible month by +1 or -1
func (h *BookingSessionHandler) ChangeMonth(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangeMonthRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.run(w, r, func(userID, sessionID uuid.UUID, _ string) (interface{}, error) {
		return h.sessionUsecase.ChangeMonth(r.Context(), userID, sessionID, &req)
	})
}

// Swipe translates a drag gesture into month navigation
func (h *BookingSessionHandler) Swipe(w http.ResponseWriter, r *http.Request) {
	var req dto.SwipeRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.run(w, r, func(userID, sessionID uuid.UUID, _ string) (interface{}, error) {
		return h.sessionUsecase.Swipe(r.Context(), userID, sessionID, &req)
	})
}

// Submit emits the booking request and commits the appointment
func (h *BookingSessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(userID, sessionID uuid.UUID, role string) (interface{}, error) {
		return h.sessionUsecase.Submit(r.Context(), userID, role, sessionID)
	})
}

// Close abandons the session, discarding the draft
func (h *BookingSessionHandler) Close(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := h.identity(w, r)
	if !ok {
		return
	}
	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid session ID", nil)
		return
	}

	if err := h.sessionUsecase.Close(r.Context(), userID, sessionID); err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking session closed", nil)
}

func (h *BookingSessionHandler) identity(w http.ResponseWriter, r *http.Request) (uuid.UUID, string, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return uuid.Nil, "", false
	}
	role, _ := middleware.GetRoleFromContext(r.Context())
	return userID, role, true
}

func (h *BookingSessionHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

func (h *BookingSessionHandler) run(
	w http.ResponseWriter,
	r *http.Request,
	apply func(userID, sessionID uuid.UUID, role string) (interface{}, error),
) {
	userID, role, ok := h.identity(w, r)
	if !ok {
		return
	}
	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid session ID", nil)
		return
	}

	result, err := apply(userID, sessionID, role)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking session updated", result)
}

func (h *BookingSessionHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		response.NotFound(w, "Booking session not found")
	case errors.Is(err, service.ErrSessionForbidden):
		response.Forbidden(w, "Booking session belongs to another user")
	case errors.Is(err, scheduling.ErrStepIncomplete):
		response.Error(w, http.StatusUnprocessableEntity, "Current step is incomplete", nil)
	case errors.Is(err, scheduling.ErrWizardNotOnStep3):
		response.Error(w, http.StatusUnprocessableEntity, "Wizard is not on the confirmation step", nil)
	case errors.Is(err, scheduling.ErrSlotUnavailable):
		response.Conflict(w, "Slot is not available")
	case errors.Is(err, scheduling.ErrNoSpecialist):
		response.Error(w, http.StatusUnprocessableEntity, "No specialist selected", nil)
	case errors.Is(err, scheduling.ErrNoActiveDay):
		response.Error(w, http.StatusUnprocessableEntity, "No day selected", nil)
	case errors.Is(err, usecase.ErrSlotTaken):
		response.Conflict(w, "Slot was taken while confirming, pick another")
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrSpecialistNotFound):
		response.NotFound(w, "Specialist not found")
	default:
		response.InternalServerError(w, "Failed to update booking session")
	}
}
