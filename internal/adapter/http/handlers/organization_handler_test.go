package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"detailshop/internal/adapter/http/handlers/mocks"
	"detailshop/internal/domain/auth"
	"detailshop/internal/domain/entities"
	"detailshop/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestOrganizationHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrganizationUseCase(ctrl)
	h := NewOrganizationHandler(uc)
	r := newRouter(member)
	r.POST("/v1/organizations", h.Create)

	uc.EXPECT().Create(gomock.Any(), member, usecase.CreateOrganizationCommand{Name: "Shine", Slug: "shine"}).
		Return(entities.Organization{}, usecase.ErrSlugTaken)
	if w := doJSON(r, http.MethodPost, "/v1/organizations", `{"name":"Shine","slug":"shine"}`); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	uc.EXPECT().Create(gomock.Any(), member, gomock.Any()).Return(entities.Organization{ID: "org-9", Slug: "glow"}, nil)
	if w := doJSON(r, http.MethodPost, "/v1/organizations", `{"name":"Glow","slug":"glow"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestBookingHandler(t *testing.T) {
	t.Run("catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)
		r := newRouter(auth.Context{})
		r.GET("/v1/public/organizations/:slug", h.Catalog)

		uc.EXPECT().Catalog(gomock.Any(), "shine").Return(usecase.BookingCatalog{
			Organization: entities.Organization{ID: "org-1", ExternalID: "ext", Slug: "shine"},
			Services:     []entities.Service{{ID: "svc-1", UnitPrice: decimal.NewNullDecimal(decimal.NewFromInt(50))}},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/public/organizations/shine", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if _, ok := body["organization"].(map[string]any)["external_id"]; ok {
			t.Fatalf("external id must not be exposed: %s", w.Body.String())
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)
		r := newRouter(auth.Context{})
		r.POST("/v1/public/organizations/:slug/estimate", h.Estimate)

		uc.EXPECT().Estimate(gomock.Any(), "nope", []string{"svc-1"}, []string{}).Return(entities.Estimate{}, usecase.ErrOrganizationNotFound)
		w := doJSON(r, http.MethodPost, "/v1/public/organizations/nope/estimate", `{"service_ids":["svc-1"]}`)
		if w.Code != http.StatusNotFound || errorCode(t, w) != "ORGANIZATION_NOT_FOUND" {
			t.Fatalf("expected 404, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("book", func(t *testing.T) {
		customer := auth.Context{PrincipalID: "user_9"}
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)
		r := newRouter(customer)
		r.POST("/v1/public/organizations/:slug/assessments", h.Book)

		uc.EXPECT().Book(gomock.Any(), customer, "shine", gomock.Any()).Return(entities.Assessment{ID: "a-1", Estimate: entities.ZeroEstimate()}, nil)
		if w := doJSON(r, http.MethodPost, "/v1/public/organizations/shine/assessments", assessmentBody); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		uc.EXPECT().Book(gomock.Any(), customer, "shine", gomock.Any()).Return(entities.Assessment{}, usecase.ErrClientNotFound)
		if w := doJSON(r, http.MethodPost, "/v1/public/organizations/shine/assessments", assessmentBody); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
