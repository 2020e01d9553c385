package dto

import "github.com/google/uuid"

// Response DTOs

type SpecialtyResponse struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type SpecialistProfileResponse struct {
	DNI           string `json:"dni"`
	Age           int    `json:"age"`
	Specialty     string `json:"specialty"`
	LicenseNumber string `json:"license_number"`
	Biography     string `json:"biography,omitempty"`
}

type PatientProfileResponse struct {
	DNI       string `json:"dni"`
	Age       int    `json:"age"`
	Insurance string `json:"insurance,omitempty"`
}

// SpecialistResponse is the catalog card shown while picking a
// specialist in the booking flow.
type SpecialistResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	FullName      string    `json:"full_name"`
	Specialty     string    `json:"specialty"`
	LicenseNumber string    `json:"license_number"`
	Biography     string    `json:"biography,omitempty"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	AvatarAltURL  string    `json:"avatar_alt_url,omitempty"`
}

type SpecialistListResponse struct {
	Specialists []SpecialistResponse `json:"specialists"`
	Total       int                  `json:"total"`
}
