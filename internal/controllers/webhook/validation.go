package webhook

import (
	"crypto/subtle"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
)

const subscribeMode = "subscribe"

// verifySubscription checks the hub.mode and hub.verify_token query values of a
// verification request against the configured token.
func verifySubscription(mode, token, verifyToken string) error {
	if mode == "" || token == "" {
		return richerrors.Error{
			ExternalMsg: "Missing hub.mode or hub.verify_token",
			Code:        fiber.StatusBadRequest,
		}
	}
	if mode != subscribeMode || subtle.ConstantTimeCompare([]byte(token), []byte(verifyToken)) != 1 {
		return richerrors.Error{
			ExternalMsg: "Webhook verification failed",
			Code:        fiber.StatusForbidden,
		}
	}
	return nil
}
