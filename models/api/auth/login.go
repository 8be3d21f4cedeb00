package authapimodels

import (
	"strings"

	apperrors "jobboard-backend/lib/utils/app-errors"
	"jobboard-backend/lib/utils/validation"
	"jobboard-backend/models"
)

type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email,max=255"`
	Password string          `json:"password" validate:"required,min=8,max=72"`
	Name     string          `json:"name" validate:"required,max=255"`
	Role     models.UserRole `json:"role" validate:"required"` // RECRUITER / CANDIDATE
}

func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)
	r.Role = models.UserRole(strings.ToUpper(strings.TrimSpace(string(r.Role))))
}

func (r RegisterRequest) Validate() error {
	details := validation.Struct(r)
	if r.Role != "" && !r.Role.IsValid() {
		if details == nil {
			details = map[string]string{}
		}
		details["role"] = "must be one of: RECRUITER CANDIDATE"
	}
	if len(details) != 0 {
		return apperrors.Validation("invalid registration data", details)
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.Check(r)
}
