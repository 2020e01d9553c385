package handler

import (
	"net/http"
	"strconv"

	"clinica-turnos/internal/usecase"
	"clinica-turnos/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

// AppointmentsPerDay returns per-day appointment counts for the admin
// dashboard chart. Range and specialty come from query parameters.
func (h *ReportHandler) AppointmentsPerDay(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	report, err := h.reportUsecase.AppointmentsPerDay(r.Context(),
		query.Get("from"), query.Get("to"), query.Get("specialty"))
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

// CompletedAppointments lists realizados with patient and specialist names
func (h *ReportHandler) CompletedAppointments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	report, err := h.reportUsecase.CompletedAppointments(r.Context(),
		query.Get("from"), query.Get("to"))
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

// RecentAuditLogs returns the latest audit trail entries
func (h *ReportHandler) RecentAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.reportUsecase.RecentAuditLogs(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}

// ExportUsers streams the users CSV export
func (h *ReportHandler) ExportUsers(w http.ResponseWriter, r *http.Request) {
	data, err := h.reportUsecase.ExportUsersCSV(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to export users")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="usuarios.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
