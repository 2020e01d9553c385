package converter

import (
	"time"

	"clinica-turnos/internal/delivery/dto"
	"clinica-turnos/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO. The
// scheduled timestamp is split into the calendar date and slot time in
// the clinic's zone, matching what the booking flow sent in.
func AppointmentToResponse(appointment *entity.Appointment, loc *time.Location) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	local := appointment.ScheduledAt.In(loc)
	response := &dto.AppointmentResponse{
		ID:           appointment.ID,
		PatientID:    appointment.PatientID,
		SpecialistID: appointment.SpecialistID,
		Specialty:    appointment.Specialty,
		ISODate:      local.Format("2006-01-02"),
		Time:         local.Format("15:04"),
		Status:       string(appointment.Status),
		CancelReason: appointment.CancelReason,
		Review:       appointment.Review,
		Rating:       appointment.Rating,
		CreatedAt:    appointment.CreatedAt,
		UpdatedAt:    appointment.UpdatedAt,
	}

	// Include names when the profile relations were preloaded
	if appointment.Patient.User.Email != "" {
		response.PatientName = appointment.Patient.User.FullName()
	}
	if appointment.Specialist.User.Email != "" {
		response.SpecialistName = appointment.Specialist.User.FullName()
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment, loc *time.Location) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment, loc)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
