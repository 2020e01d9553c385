package handler

import (
	"encoding/json"
	"net/http"

	"clinica-turnos/internal/delivery/dto"
	"clinica-turnos/internal/delivery/http/middleware"
	"clinica-turnos/internal/domain/entity"
	"clinica-turnos/internal/usecase"
	"clinica-turnos/pkg/response"
	"clinica-turnos/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Create books a turno directly, bypassing the wizard. The same
// commit-time conflict check applies either way.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), actorID, role, &req)
	if err != nil {
		switch err {
		case usecase.ErrSlotTaken:
			response.Conflict(w, "Slot is already taken")
		case usecase.ErrSlotNotBookable:
			response.Error(w, http.StatusBadRequest, "Slot is outside the bookable grid", nil)
		case usecase.ErrSpecialistNotFound:
			response.NotFound(w, "Specialist not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// ListMine returns the caller's own appointments: as patient or as
// specialist depending on the role in the token.
func (h *AppointmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	var list *dto.AppointmentListResponse
	var err error
	if role == entity.RoleSpecialist {
		list, err = h.appointmentUsecase.ListForSpecialist(r.Context(), userID)
	} else {
		list, err = h.appointmentUsecase.ListForPatient(r.Context(), userID)
	}
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", list)
}

// ListAll is the admin listing with query-parameter filters
func (h *AppointmentHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.ListAppointmentsRequest{
		From:      query.Get("from"),
		To:        query.Get("to"),
		Specialty: query.Get("specialty"),
		Status:    query.Get("status"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	list, err := h.appointmentUsecase.ListFiltered(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", list)
}

// Confirm moves a solicitado turno to confirmado (specialist only)
func (h *AppointmentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.statusChange(w, r, func(actorID, id uuid.UUID, _ string) (*dto.AppointmentResponse, error) {
		return h.appointmentUsecase.Confirm(r.Context(), actorID, id)
	})
}

// Archive moves a realizado turno to archivado (specialist only)
func (h *AppointmentHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.statusChange(w, r, func(actorID, id uuid.UUID, _ string) (*dto.AppointmentResponse, error) {
		return h.appointmentUsecase.Archive(r.Context(), actorID, id)
	})
}

// Cancel cancels a turno with a mandatory reason
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req dto.CancelAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	h.statusChange(w, r, func(actorID, id uuid.UUID, role string) (*dto.AppointmentResponse, error) {
		return h.appointmentUsecase.Cancel(r.Context(), actorID, role, id, req.Reason)
	})
}

// Review lets the patient rate a completed visit
func (h *AppointmentHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req dto.ReviewAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	h.statusChange(w, r, func(actorID, id uuid.UUID, _ string) (*dto.AppointmentResponse, error) {
		return h.appointmentUsecase.Review(r.Context(), actorID, id, &req)
	})
}

func (h *AppointmentHandler) statusChange(
	w http.ResponseWriter,
	r *http.Request,
	apply func(actorID, id uuid.UUID, role string) (*dto.AppointmentResponse, error),
) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := apply(actorID, id, role)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotYourAppointment:
			response.Forbidden(w, "Appointment belongs to another user")
		case usecase.ErrInvalidTransition:
			response.Conflict(w, "Invalid status transition")
		case usecase.ErrAlreadyReviewed:
			response.Conflict(w, "Appointment already reviewed")
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}
