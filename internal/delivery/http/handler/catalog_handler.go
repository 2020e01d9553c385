package handler

import (
	"net/http"

	"clinica-turnos/internal/usecase"
	"clinica-turnos/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type CatalogHandler struct {
	catalogUsecase     usecase.CatalogUsecase
	appointmentUsecase usecase.AppointmentUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, appointmentUsecase usecase.AppointmentUsecase) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase:     catalogUsecase,
		appointmentUsecase: appointmentUsecase,
	}
}

// ListSpecialties returns the specialty catalog
func (h *CatalogHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.catalogUsecase.ListSpecialties(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list specialties")
		return
	}
	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

// ListSpecialists returns active specialists, optionally filtered by the
// ?specialty= query parameter.
func (h *CatalogHandler) ListSpecialists(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get("specialty")

	var err error
	var list interface{}
	if specialty != "" {
		list, err = h.catalogUsecase.ListSpecialistsBySpecialty(r.Context(), specialty)
	} else {
		list, err = h.catalogUsecase.ListSpecialists(r.Context())
	}
	if err != nil {
		switch err {
		case usecase.ErrUnknownSpecialty:
			response.NotFound(w, "Unknown specialty")
		default:
			response.InternalServerError(w, "Failed to list specialists")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialists retrieved successfully", list)
}

// GetAvailability returns one month of bookable slots for a specialist.
// Month comes from ?month=YYYY-MM and defaults are rejected rather than
// guessed.
func (h *CatalogHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	specialistID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialist ID", nil)
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		response.Error(w, http.StatusBadRequest, "month query parameter is required (YYYY-MM)", nil)
		return
	}

	availability, err := h.appointmentUsecase.MonthAvailability(r.Context(), specialistID, month)
	if err != nil {
		switch err {
		case usecase.ErrInvalidMonth:
			response.Error(w, http.StatusBadRequest, "Invalid month, use YYYY-MM", nil)
		case usecase.ErrSpecialistNotFound:
			response.NotFound(w, "Specialist not found")
		default:
			response.InternalServerError(w, "Failed to compute availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}
