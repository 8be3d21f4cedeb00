package authapimodels

import (
	apperrors "jobboard-backend/lib/utils/app-errors"
	"jobboard-backend/models"
)

type JWTResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type JWTRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r JWTRefreshRequest) Validate() error {
	if r.RefreshToken == "" {
		return apperrors.Validation("invalid request", map[string]string{"refresh_token": "is required"})
	}
	return nil
}

type UserView struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	Role     models.UserRole `json:"role"`
	RoleName string          `json:"role_name"`
}
