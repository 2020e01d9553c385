package converter

import (
	"clinica-turnos/internal/delivery/dto"
	"clinica-turnos/internal/domain/entity"
)

// SpecialistProfileToResponse converts profile data without user fields
func SpecialistProfileToResponse(profile *entity.SpecialistProfile) *dto.SpecialistProfileResponse {
	if profile == nil {
		return nil
	}
	return &dto.SpecialistProfileResponse{
		DNI:           profile.DNI,
		Age:           profile.Age,
		Specialty:     profile.Specialty,
		LicenseNumber: profile.LicenseNumber,
		Biography:     profile.Biography,
	}
}

// PatientProfileToResponse converts profile data without user fields
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}
	return &dto.PatientProfileResponse{
		DNI:       profile.DNI,
		Age:       profile.Age,
		Insurance: profile.Insurance,
	}
}

// SpecialistToCard converts a profile plus its preloaded user into the
// catalog card the booking flow renders.
func SpecialistToCard(profile *entity.SpecialistProfile) *dto.SpecialistResponse {
	if profile == nil {
		return nil
	}
	return &dto.SpecialistResponse{
		UserID:        profile.UserID,
		FullName:      profile.User.FullName(),
		Specialty:     profile.Specialty,
		LicenseNumber: profile.LicenseNumber,
		Biography:     profile.Biography,
		AvatarURL:     profile.User.AvatarURL,
		AvatarAltURL:  profile.User.AvatarAltURL,
	}
}

// SpecialistsToCards converts a slice of profiles to catalog cards
func SpecialistsToCards(profiles []entity.SpecialistProfile) []dto.SpecialistResponse {
	responses := make([]dto.SpecialistResponse, len(profiles))
	for i, profile := range profiles {
		resp := SpecialistToCard(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
