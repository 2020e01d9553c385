package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterPatientRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required,min=2"`
	LastName  string `json:"last_name" validate:"required,min=2"`
	DNI       string `json:"dni" validate:"required,min=7,max=20"`
	Age       int    `json:"age" validate:"required,gte=0,lte=120"`
	Insurance string `json:"insurance" validate:"omitempty,max=150"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

type RegisterSpecialistRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	FirstName     string `json:"first_name" validate:"required,min=2"`
	LastName      string `json:"last_name" validate:"required,min=2"`
	DNI           string `json:"dni" validate:"required,min=7,max=20"`
	Age           int    `json:"age" validate:"required,gte=18,lte=120"`
	Specialty     string `json:"specialty" validate:"required"`
	LicenseNumber string `json:"license_number" validate:"required"`
	Biography     string `json:"biography" validate:"omitempty"`
	AvatarURL     string `json:"avatar_url" validate:"omitempty,url"`
	AvatarAltURL  string `json:"avatar_alt_url" validate:"omitempty,url"`
}

// Response DTOs

// TokenResponse carries the role name so the client can route straight to
// the admin, specialist or patient landing screen after login.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Role         string `json:"role"`
}

type UserResponse struct {
	ID                uuid.UUID                  `json:"id"`
	Email             string                     `json:"email"`
	FirstName         string                     `json:"first_name"`
	LastName          string                     `json:"last_name"`
	Role              string                     `json:"role"`
	AvatarURL         string                     `json:"avatar_url,omitempty"`
	AvatarAltURL      string                     `json:"avatar_alt_url,omitempty"`
	SpecialistProfile *SpecialistProfileResponse `json:"specialist_profile,omitempty"`
	PatientProfile    *PatientProfileResponse    `json:"patient_profile,omitempty"`
	CreatedAt         time.Time                  `json:"created_at"`
	UpdatedAt         time.Time                  `json:"updated_at"`
}
