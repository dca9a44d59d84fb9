package handlers

import (
	"errors"
	"net/http"
	request "rental_portal/internal/adapter/http/dto/request"
	"rental_portal/internal/usecase"
	"rental_portal/internal/usecase/interfaces"
	"rental_portal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errMissingSession = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Tenant session required", http.StatusUnauthorized)
)

// mapError turns usecase sentinels into the response the client sees.
// Validation errors carry their own message so forms can show it.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidApartmentID),
		errors.Is(err, usecase.ErrInvalidApartmentInput),
		errors.Is(err, usecase.ErrApartmentRequiresAssign),
		errors.Is(err, usecase.ErrApartmentArchiveViaRoute),
		errors.Is(err, usecase.ErrInvalidTenantID),
		errors.Is(err, usecase.ErrInvalidContactInfo),
		errors.Is(err, usecase.ErrApartmentIDRequired),
		errors.Is(err, usecase.ErrInvalidApplicationID),
		errors.Is(err, usecase.ErrInvalidApplicationInput),
		errors.Is(err, usecase.ErrInvalidReviewDecision),
		errors.Is(err, usecase.ErrInvalidAgreementID),
		errors.Is(err, usecase.ErrInvalidAgreementInput),
		errors.Is(err, usecase.ErrSignatureRequired),
		errors.Is(err, usecase.ErrTenantEmailMissing),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentInput),
		errors.Is(err, usecase.ErrInvalidPaymentStatus),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidTicketID),
		errors.Is(err, usecase.ErrInvalidTicketInput),
		errors.Is(err, usecase.ErrInvalidLoginInput),
		errors.Is(err, usecase.ErrInvalidPasscode),
		errors.Is(err, usecase.ErrTenantNoApartment):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)

	case errors.Is(err, usecase.ErrApartmentNotFound),
		errors.Is(err, usecase.ErrTenantNotFound),
		errors.Is(err, usecase.ErrApplicationNotFound),
		errors.Is(err, usecase.ErrAgreementNotFound),
		errors.Is(err, usecase.ErrPaymentNotFound),
		errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)

	case errors.Is(err, usecase.ErrRoomNumberTaken),
		errors.Is(err, usecase.ErrInvalidApartmentStatus),
		errors.Is(err, usecase.ErrApartmentStateConflict),
		errors.Is(err, usecase.ErrApartmentNotVacant),
		errors.Is(err, usecase.ErrApartmentTaken),
		errors.Is(err, usecase.ErrTenantInactive),
		errors.Is(err, usecase.ErrApplicationPending),
		errors.Is(err, usecase.ErrApplicationAlreadyReviewed),
		errors.Is(err, usecase.ErrInvalidAgreementTransition),
		errors.Is(err, usecase.ErrAgreementStateConflict),
		errors.Is(err, usecase.ErrPaymentAlreadyExists),
		errors.Is(err, usecase.ErrInvalidTicketTransition),
		errors.Is(err, usecase.ErrTicketStateConflict),
		errors.Is(err, interfaces.ErrConditionFailed):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)

	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrNoActiveTenant),
		errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainError("UNAUTHORIZED", err.Error(), err, http.StatusUnauthorized)

	case errors.Is(err, usecase.ErrDispatchFailed):
		return pkg.NewDomainError("DISPATCH_FAILED", err.Error(), err, http.StatusBadGateway)

	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	_ = c.Error(appErr)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
