package payments

import (
	"context"
	"detailshop/internal/config"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("mock mode needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway(config.Payments{Mock: true})
		if err != nil || g == nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %+v err=%v", g, err)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway(config.Payments{})
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})
}

func TestMercadoPagoGateway_CreatePaymentMock(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	g := NewMockGateway()
	g.now = func() time.Time { return fixed }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":81.18,"external_reference":"a-1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "approved" || id == "" {
		t.Fatalf("unexpected result id=%q status=%q", id, status)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if body["external_reference"] != "a-1" || body["status_detail"] != "accredited" {
		t.Fatalf("unexpected response: %v", body)
	}
	if body["date_approved"] != fixed.Format(time.RFC3339Nano) {
		t.Fatalf("unexpected date_approved: %v", body["date_approved"])
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
