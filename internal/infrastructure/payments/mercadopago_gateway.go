package payments

import (
	"context"
	"detailshop/internal/config"
	"detailshop/internal/usecase/interfaces"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway charges payments through the Mercado Pago SDK. In mock mode
// no request leaves the process and every payment is approved.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg config.Payments) (*MercadoPagoGateway, error) {
	if cfg.Mock {
		slog.Info("[payment][gateway] mock mode enabled")
		return NewMockGateway(), nil
	}
	if cfg.AccessToken == "" {
		slog.Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		slog.Error("[payment][gateway] failed creating sdk config", "err", err)
		return nil, err
	}
	slog.Info("[payment][gateway] Mercado Pago client initialized", "sandbox", cfg.Sandbox())
	return &MercadoPagoGateway{client: payment.NewClient(sdkCfg), now: time.Now}, nil
}

func NewMockGateway() *MercadoPagoGateway {
	return &MercadoPagoGateway{mockMode: true, now: time.Now}
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		return g.createMock(ctx, requestPayload)
	}
	if g == nil || g.client == nil {
		slog.ErrorContext(ctx, "[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	slog.DebugContext(ctx, "[payment][gateway] create start", "payload_len", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		slog.WarnContext(ctx, "[payment][gateway] payload unmarshal failed", "err", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		slog.ErrorContext(ctx, "[payment][gateway] sdk create failed", "err", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		slog.ErrorContext(ctx, "[payment][gateway] response marshal failed", "err", err)
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	slog.InfoContext(ctx, "[payment][gateway] create success", "provider_payment_id", id, "provider_status", resp.Status)
	return id, resp.Status, b, nil
}

// createMock echoes the request back with provider-style approval fields.
func (g *MercadoPagoGateway) createMock(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now.Format(time.RFC3339Nano)
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now.Format(time.RFC3339Nano)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	slog.InfoContext(ctx, "[payment][gateway] mock create success", "provider_payment_id", id)
	return id, "approved", b, nil
}
