package converter

import (
	"clinica-turnos/internal/delivery/dto"
	"clinica-turnos/internal/domain/entity"
)

func SpecialtyToResponse(specialty *entity.Specialty) *dto.SpecialtyResponse {
	if specialty == nil {
		return nil
	}
	return &dto.SpecialtyResponse{
		ID:          specialty.ID,
		Code:        specialty.Code,
		Name:        specialty.Name,
		Description: specialty.Description,
	}
}

func SpecialtiesToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, len(specialties))
	for i, specialty := range specialties {
		resp := SpecialtyToResponse(&specialty)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
