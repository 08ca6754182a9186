package bootstrap

import (
	"manuara-reservas/internal/pkg/apikey"
	"manuara-reservas/internal/pkg/config"
	"manuara-reservas/internal/pkg/jwt"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		NewJWTValidator,
		NewAPIKeyVerifier,
	),
)

func NewJWTValidator(cfg config.Config) *jwt.Validator {
	return jwt.NewValidator(cfg.Auth.JWTSecret)
}

func NewAPIKeyVerifier(cfg config.Config) *apikey.Verifier {
	return apikey.NewVerifier(cfg.ExternalAPI.APIKeyHash)
}
