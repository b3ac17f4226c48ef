package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"detailshop/internal/adapter/http/handlers/mocks"
	"detailshop/internal/domain/auth"
	"detailshop/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var (
	member   = auth.Context{PrincipalID: "user_1", OrgID: "org-1"}
	outsider = auth.Context{PrincipalID: "user_2", OrgID: "org-2"}
)

// newRouter returns a test engine whose requests carry ac as the caller.
func newRouter(ac auth.Context) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if ac.IsAuthenticated() {
			c.Request = c.Request.WithContext(auth.WithContext(c.Request.Context(), ac))
		}
		c.Next()
	})
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body.Code
}

func TestEstimateHandler_Calculate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc, auth.AdminPolicy{})

		r := newRouter(member)
		r.POST("/v1/organizations/:org_id/estimates", h.Calculate)

		uc.EXPECT().Calculate(gomock.Any(), "org-1", []string{"svc-b", "svc-a"}, []string{"mod-1"}).Return(entities.Estimate{
			LineItems: []entities.LineItem{{Type: entities.LineItemService, RefID: "svc-b", Name: "Wash", Price: decimal.RequireFromString("49.99")}},
			Subtotal:  decimal.RequireFromString("49.99"),
			Tax:       decimal.RequireFromString("4.12"),
			Total:     decimal.RequireFromString("54.11"),
		})

		w := doJSON(r, http.MethodPost, "/v1/organizations/org-1/estimates", `{"service_ids":["svc-b"," svc-a",""],"modifier_ids":["mod-1"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var res struct {
			Total float64 `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || res.Total != 54.11 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewEstimateHandler(mocks.NewMockIEstimateUseCase(ctrl), auth.AdminPolicy{})
		r := newRouter(auth.Context{})
		r.POST("/v1/organizations/:org_id/estimates", h.Calculate)

		w := doJSON(r, http.MethodPost, "/v1/organizations/org-1/estimates", `{}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("other organization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewEstimateHandler(mocks.NewMockIEstimateUseCase(ctrl), auth.AdminPolicy{})
		r := newRouter(outsider)
		r.POST("/v1/organizations/:org_id/estimates", h.Calculate)

		w := doJSON(r, http.MethodPost, "/v1/organizations/org-1/estimates", `{}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin may price any organization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc, auth.NewAdminPolicy("user_2"))
		r := newRouter(outsider)
		r.POST("/v1/organizations/:org_id/estimates", h.Calculate)

		uc.EXPECT().Calculate(gomock.Any(), "org-1", []string{}, []string{}).Return(entities.ZeroEstimate())

		w := doJSON(r, http.MethodPost, "/v1/organizations/org-1/estimates", `{}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewEstimateHandler(mocks.NewMockIEstimateUseCase(ctrl), auth.AdminPolicy{})
		r := newRouter(member)
		r.POST("/v1/organizations/:org_id/estimates", h.Calculate)

		w := doJSON(r, http.MethodPost, "/v1/organizations/org-1/estimates", `{`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
