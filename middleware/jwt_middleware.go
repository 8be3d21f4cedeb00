package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"jobboard-backend/config"
	apperrors "jobboard-backend/lib/utils/app-errors"
	authutils "jobboard-backend/lib/utils/auth-utils"
	apimodels "jobboard-backend/models/api"
)

// AuthorizationRequired пропускает только подписанный access токен, refresh токен сессией не считается
func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		ErrorHandler: unauthorized,
		SuccessHandler: func(ctx *fiber.Ctx) error {
			claims := authutils.GetClaims(ctx)
			if typ, _ := claims["typ"].(string); typ != authutils.TokenTypeAccess {
				return unauthorized(ctx, nil)
			}
			if GetUserID(ctx) == "" {
				return unauthorized(ctx, nil)
			}
			return ctx.Next()
		},
	})
}

func unauthorized(ctx *fiber.Ctx, _ error) error {
	return ctx.Status(fiber.StatusUnauthorized).
		JSON(apimodels.NewError(apperrors.CodeUnauthorized, "authentication required"))
}
