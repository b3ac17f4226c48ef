package usecase

import (
	"context"
	"detailshop/internal/config"
	"detailshop/internal/domain/auth"
	"detailshop/internal/domain/entities"
	"detailshop/internal/infrastructure/metrics"
	"detailshop/internal/usecase/interfaces"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrAssessmentNotPayable           = errors.New("assessment is not payable")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const sandboxFallbackPayerEmail = "test_user_br@testuser.com"

// IAssessmentPaymentUseCase charges an assessment's estimate total and keeps the
// payment history.
type IAssessmentPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, ac auth.Context, assessmentID string, payload json.RawMessage) (entities.AssessmentPayment, error)
	ListByAssessment(ctx context.Context, ac auth.Context, assessmentID string) ([]entities.AssessmentPayment, error)
}

type AssessmentPaymentUseCase struct {
	repo        interfaces.IAssessmentPaymentRepository
	assessments interfaces.IAssessmentRepository
	gateway     interfaces.IPaymentGateway
	settings    config.Payments
}

var _ IAssessmentPaymentUseCase = (*AssessmentPaymentUseCase)(nil)

func NewAssessmentPaymentUseCase(
	repo interfaces.IAssessmentPaymentRepository,
	assessments interfaces.IAssessmentRepository,
	gateway interfaces.IPaymentGateway,
	settings config.Payments,
) *AssessmentPaymentUseCase {
	return &AssessmentPaymentUseCase{repo: repo, assessments: assessments, gateway: gateway, settings: settings}
}

// CreateAndApprove charges the assessment's snapshot total. The amount sent to the
// provider always comes from the stored estimate, never from the payload.
func (u *AssessmentPaymentUseCase) CreateAndApprove(ctx context.Context, ac auth.Context, assessmentID string, payload json.RawMessage) (entities.AssessmentPayment, error) {
	if !ac.IsAuthenticated() {
		return entities.AssessmentPayment{}, ErrUnauthenticated
	}
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.AssessmentPayment{}, invalid("assessment_id", "is required")
	}
	mockMode := u.settings.Mock
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			slog.WarnContext(ctx, "[payment][usecase] invalid payload", "assessment_id", assessmentID, "payload_len", len(payload))
			return entities.AssessmentPayment{}, ErrInvalidProviderPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.AssessmentPayment{}, errors.New("payment gateway not configured")
	}

	a, err := u.assessments.GetByID(ctx, assessmentID)
	if err != nil {
		slog.ErrorContext(ctx, "[payment][usecase] failed loading assessment", "assessment_id", assessmentID, "err", err)
		return entities.AssessmentPayment{}, err
	}
	if a.ID == "" {
		return entities.AssessmentPayment{}, ErrAssessmentNotFound
	}
	if !ac.CanAccessOrg(a.OrgID) {
		return entities.AssessmentPayment{}, ErrForbidden
	}
	if !isPayable(a) {
		slog.InfoContext(ctx, "[payment][usecase] assessment not payable", "assessment_id", a.ID, "status", a.Status, "total", a.Estimate.Total.String())
		return entities.AssessmentPayment{}, ErrAssessmentNotPayable
	}

	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		// valid JSON that is not an object
		return entities.AssessmentPayment{}, ErrInvalidProviderPayload
	}
	if !mockMode {
		if !hasNonEmptyString(req, "payment_method_id") {
			return entities.AssessmentPayment{}, ErrInvalidProviderPayload
		}
		u.mapSandboxPayer(ctx, req)
		u.ensurePayerDefaults(req)
		if !hasPayer(req) {
			return entities.AssessmentPayment{}, ErrInvalidProviderPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = a.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Assessment %s (%s %s %d)", a.ID, a.CarMake, a.CarModel, a.CarYear)
	}
	req["transaction_amount"] = a.Estimate.Total.InexactFloat64()
	enriched, err := json.Marshal(req)
	if err != nil {
		return entities.AssessmentPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		metrics.PaymentsProcessed.WithLabelValues("error").Inc()
		slog.ErrorContext(ctx, "[payment][usecase] payment gateway failed", "assessment_id", a.ID, "err", err)
		return entities.AssessmentPayment{}, classifyGatewayError(err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		slog.WarnContext(ctx, "[payment][usecase] provider response unmarshal failed", "assessment_id", a.ID, "err", err)
	}

	p := entities.AssessmentPayment{
		ID:                 providerPaymentID,
		AssessmentID:       a.ID,
		OrgID:              a.OrgID,
		Amount:             a.Estimate.Total,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		slog.ErrorContext(ctx, "[payment][usecase] payment repository create failed", "assessment_id", a.ID, "payment_id", p.ID, "err", err)
		return entities.AssessmentPayment{}, err
	}
	metrics.PaymentsProcessed.WithLabelValues(string(created.Status)).Inc()
	slog.InfoContext(ctx, "[payment][usecase] payment recorded",
		"assessment_id", a.ID,
		"payment_id", created.ID,
		"status", created.Status,
		"amount", created.Amount.String(),
	)
	return created, nil
}

func (u *AssessmentPaymentUseCase) ListByAssessment(ctx context.Context, ac auth.Context, assessmentID string) ([]entities.AssessmentPayment, error) {
	if !ac.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return nil, invalid("assessment_id", "is required")
	}
	a, err := u.assessments.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if a.ID == "" {
		return nil, ErrAssessmentNotFound
	}
	if !ac.CanAccessOrg(a.OrgID) {
		return nil, ErrForbidden
	}
	return u.repo.ListByAssessmentID(ctx, a.ID)
}

func isPayable(a entities.Assessment) bool {
	switch a.Status {
	case entities.AssessmentStatusReviewed, entities.AssessmentStatusComplete:
		return a.Estimate.Total.IsPositive()
	}
	return false
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

// mapSandboxPayer swaps the configured sandbox payer user id for its email;
// the sandbox rejects some test users referenced by id.
func (u *AssessmentPaymentUseCase) mapSandboxPayer(ctx context.Context, req map[string]any) {
	if !u.settings.Sandbox() || u.settings.TestPayerUserID == "" || u.settings.TestPayerEmail == "" {
		return
	}
	payer, ok := req["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.settings.TestPayerUserID {
		return
	}
	payer["email"] = u.settings.TestPayerEmail
	delete(payer, "id")
	slog.DebugContext(ctx, "[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func (u *AssessmentPaymentUseCase) ensurePayerDefaults(req map[string]any) {
	v, ok := req["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		req["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case u.settings.TestPayerEmail != "":
		payer["email"] = u.settings.TestPayerEmail
	case u.settings.Sandbox():
		payer["email"] = sandboxFallbackPayerEmail
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}

// classifyGatewayError maps Mercado Pago error bodies onto sentinel errors.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}
