package store

import (
	"go.uber.org/zap"

	"github.com/DannerVelaF/VeterinariaAdelaFront/models"
)

// ValidateForUser re-checks the cart against the signed-in persona. Runs at
// startup and after login/logout. A nil persona clears the cart outright; an
// owner mismatch or stale cart is cleared before the new owner is stamped.
// Reports whether the cart is usable for the given persona afterwards.
func ValidateForUser(cart *Cart, persona *models.Persona, logger *zap.Logger) bool {
	if logger == nil {
		logger = zap.NewNop()
	}
	if persona == nil {
		cart.Clear()
		return false
	}

	if !cart.IsValid(persona.ID) {
		logger.Info("cart invalid for current user, clearing",
			zap.Int64("user_id", persona.ID))
		cart.Clear()
	}
	cart.SetUserID(persona.ID)
	cart.ClearExpired()
	return cart.IsValid(persona.ID)
}
