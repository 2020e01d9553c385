package converter

import (
	"clinica-turnos/internal/delivery/dto"
	"clinica-turnos/internal/domain/entity"
)

// ClinicalRecordToResponse converts a ClinicalRecord entity to its DTO
func ClinicalRecordToResponse(record *entity.ClinicalRecord) *dto.ClinicalRecordResponse {
	if record == nil {
		return nil
	}
	return &dto.ClinicalRecordResponse{
		ID:            record.ID,
		AppointmentID: record.AppointmentID,
		PatientID:     record.PatientID,
		SpecialistID:  record.SpecialistID,
		HeightCm:      record.HeightCm,
		WeightKg:      record.WeightKg,
		Temperature:   record.Temperature,
		BloodPressure: record.BloodPressure,
		Diagnosis:     record.Diagnosis,
		RecordedAt:    record.RecordedAt,
	}
}

// ClinicalRecordsToResponses converts a slice of records to DTOs
func ClinicalRecordsToResponses(records []entity.ClinicalRecord) []dto.ClinicalRecordResponse {
	responses := make([]dto.ClinicalRecordResponse, len(records))
	for i, record := range records {
		resp := ClinicalRecordToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
