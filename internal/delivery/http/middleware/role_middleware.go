package middleware

import (
	"net/http"

	"clinica-turnos/internal/domain/entity"
	"clinica-turnos/pkg/response"
)

// RequireRole checks that the authenticated user carries one of the
// allowed role names. The role comes from the JWT claims via
// AuthMiddleware, never inferred from profile data.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireSpecialist is a convenience middleware for specialist-only endpoints
func RequireSpecialist(next http.Handler) http.Handler {
	return RequireRole(entity.RoleSpecialist)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient)(next)
}

// RequireAdminOrSpecialist is a convenience middleware for staff endpoints
func RequireAdminOrSpecialist(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleSpecialist)(next)
}
