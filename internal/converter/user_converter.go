package converter

import (
	"clinica-turnos/internal/delivery/dto"
	"clinica-turnos/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         entity.RoleNameByID(user.RoleID),
		AvatarURL:    user.AvatarURL,
		AvatarAltURL: user.AvatarAltURL,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if user.SpecialistProfile != nil {
		response.SpecialistProfile = SpecialistProfileToResponse(user.SpecialistProfile)
	}
	if user.PatientProfile != nil {
		response.PatientProfile = PatientProfileToResponse(user.PatientProfile)
	}

	return response
}
