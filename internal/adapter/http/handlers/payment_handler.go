package handlers

import (
	"log/slog"
	"net/http"

	request "detailshop/internal/adapter/http/dto/request"
	response "detailshop/internal/adapter/http/dto/response"
	"detailshop/internal/domain/auth"
	"detailshop/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler charges assessments through the payment gateway.
type PaymentHandler struct {
	usecase  usecase.IAssessmentPaymentUseCase
	mockMode bool
}

// NewPaymentHandler builds the handler. In mock mode an unreadable body falls back
// to an empty provider payload instead of failing the request.
func NewPaymentHandler(uc usecase.IAssessmentPaymentUseCase, mockMode bool) *PaymentHandler {
	return &PaymentHandler{usecase: uc, mockMode: mockMode}
}

// Create godoc
// @Summary      Charge an assessment
// @Description  Body is a Mercado Pago payment payload, bare or wrapped in mp_payload. Amount and reference come from the assessment.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        assessment_id  path  string                        true  "Assessment ID"
// @Param        body           body  request.PaymentCreateRequest  false "Provider payload"
// @Success      200  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /assessments/{assessment_id}/payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	assessmentID := c.Param("assessment_id")
	slog.InfoContext(ctx, "[payment][handler] create start", "assessment_id", assessmentID)

	payload, err := readPaymentPayload(c)
	if err != nil {
		if !h.mockMode {
			slog.WarnContext(ctx, "[payment][handler] invalid payload", "assessment_id", assessmentID, "err", err)
			abortWith(c, errInvalidPayload)
			return
		}
		slog.WarnContext(ctx, "[payment][handler] payload invalid in mock mode, using empty payload", "assessment_id", assessmentID, "err", err)
		payload = []byte("{}")
	}

	created, err := h.usecase.CreateAndApprove(ctx, auth.FromContext(ctx), assessmentID, payload)
	if err != nil {
		abortWithError(c, "payment", err)
		return
	}
	slog.InfoContext(ctx, "[payment][handler] create success", "assessment_id", assessmentID, "payment_id", created.ID, "status", created.Status)
	c.JSON(http.StatusOK, response.FromPayment(created))
}

// List godoc
// @Summary  Payment history of an assessment
// @Tags     payments
// @Produce  json
// @Param    assessment_id  path  string  true  "Assessment ID"
// @Success  200  {array}  response.PaymentResponse
// @Security Bearer
// @Router   /assessments/{assessment_id}/payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.usecase.ListByAssessment(ctx, auth.FromContext(ctx), c.Param("assessment_id"))
	if err != nil {
		abortWithError(c, "payment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(list))
}

// Latest godoc
// @Summary  Latest payment of an assessment
// @Tags     payments
// @Produce  json
// @Param    assessment_id  path  string  true  "Assessment ID"
// @Success  200  {object}  response.PaymentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /assessments/{assessment_id}/payments/latest [get]
func (h *PaymentHandler) Latest(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.usecase.ListByAssessment(ctx, auth.FromContext(ctx), c.Param("assessment_id"))
	if err != nil {
		abortWithError(c, "payment", err)
		return
	}
	if len(list) == 0 {
		abortWithError(c, "payment", usecase.ErrPaymentNotFound)
		return
	}

	latest := list[0]
	for _, p := range list[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromPayment(latest))
}

func readPaymentPayload(c *gin.Context) ([]byte, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return request.ParsePaymentPayload(raw)
}
