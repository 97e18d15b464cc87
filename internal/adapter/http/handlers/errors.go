package handlers

import (
	"errors"
	"net/http"

	"painel_master/internal/adapter/http/middleware"
	"painel_master/internal/domain/entities"
	"painel_master/internal/infrastructure/payments"
	"painel_master/internal/infrastructure/rowstore"
	"painel_master/internal/usecase"
	"painel_master/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// currentIdentity writes a 401 and returns false when the request carries no
// identity; routes are expected to run behind RequireSession.
func currentIdentity(c *gin.Context) (entities.Identity, bool) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		writeError(c, pkg.ErrUnauthorized)
	}
	return identity, ok
}

// mapCommonError handles the failures every area shares: role mismatches,
// attachment validation and unreachable backends.
func mapCommonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrIdentityRequired):
		return pkg.ErrForbidden
	case errors.Is(err, entities.ErrAttachmentEncoding), errors.Is(err, entities.ErrAttachmentTooLarge), errors.Is(err, entities.ErrAttachmentType):
		return pkg.NewDomainError("INVALID_ATTACHMENT", "Invalid attachment", err, http.StatusBadRequest)
	case errors.Is(err, payments.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_TRANSACTION_ID", "Invalid transaction id", http.StatusBadRequest)
	case errors.Is(err, payments.ErrWebhookNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, rowstore.ErrRemoteFailure), errors.Is(err, payments.ErrProviderFailure):
		return pkg.NewDomainError("REMOTE_FAILURE", "A remote service failed, try again later", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
