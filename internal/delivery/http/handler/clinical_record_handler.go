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

type ClinicalRecordHandler struct {
	recordUsecase usecase.ClinicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewClinicalRecordHandler(recordUsecase usecase.ClinicalRecordUsecase, validator *validator.CustomValidator) *ClinicalRecordHandler {
	return &ClinicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

// Create writes the historia clinica entry for a confirmed visit and
// completes the appointment in the same transaction.
func (h *ClinicalRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	specialistID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateClinicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), specialistID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotYourAppointment:
			response.Forbidden(w, "Appointment belongs to another specialist")
		case usecase.ErrVisitNotConfirmed:
			response.Conflict(w, "Appointment must be confirmed before writing a record")
		case usecase.ErrRecordAlreadyExists:
			response.Conflict(w, "Appointment already has a clinical record")
		default:
			response.InternalServerError(w, "Failed to create clinical record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Clinical record created successfully", record)
}

// GetByAppointment fetches the record behind one appointment
func (h *ClinicalRecordHandler) GetByAppointment(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	record, err := h.recordUsecase.GetByAppointment(r.Context(), actorID, role, appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Clinical record not found")
		case usecase.ErrNotYourAppointment:
			response.Forbidden(w, "Clinical record belongs to another user")
		default:
			response.InternalServerError(w, "Failed to get clinical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinical record retrieved successfully", record)
}

// ListMine returns the caller's records: their own history for patients,
// the records they wrote for specialists.
func (h *ClinicalRecordHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	var list *dto.ClinicalRecordListResponse
	var err error
	if role == entity.RoleSpecialist {
		list, err = h.recordUsecase.ListForSpecialist(r.Context(), userID)
	} else {
		list, err = h.recordUsecase.ListForPatient(r.Context(), userID)
	}
	if err != nil {
		response.InternalServerError(w, "Failed to list clinical records")
		return
	}

	response.Success(w, http.StatusOK, "Clinical records retrieved successfully", list)
}

// MyPatients lists the distinct patients the specialist has treated
func (h *ClinicalRecordHandler) MyPatients(w http.ResponseWriter, r *http.Request) {
	specialistID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patients, err := h.recordUsecase.MyPatients(r.Context(), specialistID)
	if err != nil {
		response.InternalServerError(w, "Failed to list patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}
