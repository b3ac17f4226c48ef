package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"detailshop/internal/usecase"
	"detailshop/pkg"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mocks/usecase_mock.go -package=mocks detailshop/internal/usecase IEstimateUseCase,IAssessmentUseCase,IClientUseCase,ICatalogUseCase,IOrganizationUseCase,IBookingUseCase,IAssessmentPaymentUseCase

var (
	errInvalidPayload  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	errForbidden       = pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed for this organization", http.StatusForbidden)
)

// mapError translates use case errors into the HTTP error envelope.
func mapError(err error) *pkg.AppError {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainError("VALIDATION_ERROR", ve.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid input", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return errUnauthenticated
	case errors.Is(err, usecase.ErrForbidden):
		return errForbidden
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found. Create the client first or select an existing one.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound), errors.Is(err, usecase.ErrServiceCrossTenant):
		return pkg.NewDomainError("INVALID_SERVICE", "One or more selected services are not available", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		return pkg.NewDomainErrorSimple("ASSESSMENT_NOT_FOUND", "Assessment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrganizationNotFound):
		return pkg.NewDomainErrorSimple("ORGANIZATION_NOT_FOUND", "Organization not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainError("INVALID_STATUS", "Invalid assessment status", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSlugTaken):
		return pkg.NewDomainErrorSimple("SLUG_TAKEN", "Organization slug already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrAssessmentNotPayable):
		return pkg.NewDomainError("ASSESSMENT_NOT_PAYABLE", "Assessment must be reviewed or complete with a positive total", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider rejected the credentials", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// abortWithError writes the mapped error. Server errors are logged with their cause.
func abortWithError(c *gin.Context, area string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "["+area+"][handler] request failed", "err", err)
	} else {
		slog.DebugContext(c.Request.Context(), "["+area+"][handler] request rejected", "code", appErr.Code, "err", err)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
