package response

import (
	"encoding/json"
	"testing"
	"time"

	"detailshop/internal/domain/entities"
	"detailshop/internal/usecase"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestFromEstimate(t *testing.T) {
	e := entities.Estimate{
		LineItems: []entities.LineItem{
			{Type: entities.LineItemService, RefID: "svc-1", Name: "Full Detail", Price: d("49.99")},
			{Type: entities.LineItemModifier, RefID: "mod-1", Name: "Pet Hair", Price: d("25.00")},
		},
		Subtotal: d("74.99"),
		Discount: decimal.Zero,
		Tax:      d("6.19"),
		Total:    d("81.18"),
	}

	res := FromEstimate(e)
	if len(res.LineItems) != 2 || res.LineItems[1].Type != "modifier" || res.LineItems[1].Price != 25 {
		t.Fatalf("unexpected line items: %+v", res.LineItems)
	}
	if res.Subtotal != 74.99 || res.Tax != 6.19 || res.Total != 81.18 || res.Discount != 0 {
		t.Fatalf("unexpected amounts: %+v", res)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"line_items":[{"type":"service","ref_id":"svc-1","name":"Full Detail","price":49.99},` +
		`{"type":"modifier","ref_id":"mod-1","name":"Pet Hair","price":25}],` +
		`"subtotal":74.99,"discount":0,"tax":6.19,"total":81.18}`
	if string(b) != want {
		t.Fatalf("unexpected json:\n%s\nwant:\n%s", b, want)
	}
}

func TestFromEstimate_LineItemsAddUpToSubtotal(t *testing.T) {
	// Legacy prices with three decimals are summed before rounding.
	e := entities.Estimate{
		LineItems: []entities.LineItem{
			{Type: entities.LineItemService, RefID: "svc-1", Name: "Wash", Price: d("10.004")},
			{Type: entities.LineItemService, RefID: "svc-2", Name: "Wax", Price: d("10.004")},
		},
		Subtotal: d("20.01"),
		Discount: decimal.Zero,
		Tax:      d("1.65"),
		Total:    d("21.66"),
	}

	res := FromEstimate(e)
	if res.LineItems[0].Price != 10.004 || res.LineItems[1].Price != 10.004 {
		t.Fatalf("expected stored prices, got %+v", res.LineItems)
	}
	if res.Subtotal != 20.01 {
		t.Fatalf("expected subtotal 20.01, got %v", res.Subtotal)
	}
}

func TestFromEstimate_EmptyLineItemsSerializeAsArray(t *testing.T) {
	b, err := json.Marshal(FromEstimate(entities.ZeroEstimate()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"line_items":[],"subtotal":0,"discount":0,"tax":0,"total":0}`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}
}

func TestFromService_InvalidPriceIsNull(t *testing.T) {
	res := FromService(entities.Service{ID: "svc-1", Type: entities.ServiceTypeBase})
	if res.UnitPrice != nil {
		t.Fatalf("expected nil unit price, got %v", *res.UnitPrice)
	}
	res = FromService(entities.Service{ID: "svc-1", UnitPrice: decimal.NewNullDecimal(d("19.5"))})
	if res.UnitPrice == nil || *res.UnitPrice != 19.5 {
		t.Fatalf("unexpected unit price: %v", res.UnitPrice)
	}
}

func TestFromAssessment(t *testing.T) {
	now := time.Now().UTC()
	res := FromAssessment(entities.Assessment{
		ID:        "a-1",
		OrgID:     "org-1",
		Status:    entities.AssessmentStatusPending,
		Estimate:  entities.ZeroEstimate(),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if res.ID != "a-1" || res.Status != "pending" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.ServiceIDs == nil || res.ModifierIDs == nil {
		t.Fatalf("id lists must not be nil: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromBookingCatalog_HidesExternalID(t *testing.T) {
	res := FromBookingCatalog(usecase.BookingCatalog{
		Organization: entities.Organization{ID: "org-1", ExternalID: "ext_1", Slug: "shine"},
	})
	if res.Organization.ExternalID != "" {
		t.Fatalf("external id leaked: %+v", res.Organization)
	}
	if res.Services == nil || res.Modifiers == nil {
		t.Fatalf("lists must not be nil: %+v", res)
	}
}

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	res := FromPayment(entities.AssessmentPayment{
		ID:                 "pay-1",
		AssessmentID:       "a-1",
		Amount:             d("81.18"),
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: []byte(`{"id":"1"}`),
		ProviderPayload:    map[string]any{"id": "1"},
	})
	if res.PaymentID != "pay-1" || res.AssessmentID != "a-1" || res.Amount != 81.18 {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "approved" || res.MPPayloadRaw != `{"id":"1"}` || res.MPPayload["id"] != "1" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}
