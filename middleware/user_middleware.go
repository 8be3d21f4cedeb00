package middleware

import (
	"github.com/gofiber/fiber/v2"
	apperrors "jobboard-backend/lib/utils/app-errors"
	authutils "jobboard-backend/lib/utils/auth-utils"
	"jobboard-backend/models"
	apimodels "jobboard-backend/models/api"
)

func RecruiterRequired() fiber.Handler {
	return roleRequired(models.RecruiterRole)
}

func CandidateRequired() fiber.Handler {
	return roleRequired(models.CandidateRole)
}

func roleRequired(role models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != role {
			return ctx.Status(fiber.StatusForbidden).
				JSON(apimodels.NewError(apperrors.CodeForbidden, "operation is available for "+role.ToHuman()+" only"))
		}
		return ctx.Next()
	}
}

func GetUserID(ctx *fiber.Ctx) string {
	return claimString(ctx, "sub")
}

func GetUserEmail(ctx *fiber.Ctx) string {
	return claimString(ctx, "email")
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	return models.UserRole(claimString(ctx, "role"))
}

func claimString(ctx *fiber.Ctx, name string) string {
	claims := authutils.GetClaims(ctx)
	if value, ok := claims[name].(string); ok {
		return value
	}
	return ""
}
