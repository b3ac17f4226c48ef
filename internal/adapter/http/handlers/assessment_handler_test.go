package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"detailshop/internal/adapter/http/handlers/mocks"
	"detailshop/internal/domain/entities"
	"detailshop/internal/usecase"

	"go.uber.org/mock/gomock"
)

const assessmentBody = `{"client_name":"Jane Doe","client_email":"jane@x.com","car_make":"Honda","car_model":"Civic",` +
	`"car_year":2020,"service_ids":["svc-1"],"scheduled_for":"2026-05-01T09:00:00Z"}`

func TestAssessmentHandler_Create(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "created", wantCode: http.StatusCreated},
		{name: "client not found", err: usecase.ErrClientNotFound, wantCode: http.StatusNotFound, wantErr: "CLIENT_NOT_FOUND"},
		{name: "cross tenant service", err: fmt.Errorf("%w: svc-1", usecase.ErrServiceCrossTenant), wantCode: http.StatusUnprocessableEntity, wantErr: "INVALID_SERVICE"},
		{name: "missing service", err: usecase.ErrServiceNotFound, wantCode: http.StatusUnprocessableEntity, wantErr: "INVALID_SERVICE"},
		{name: "validation", err: &usecase.ValidationError{Field: "car_year", Reason: "out of range"}, wantCode: http.StatusBadRequest, wantErr: "VALIDATION_ERROR"},
		{name: "forbidden", err: usecase.ErrForbidden, wantCode: http.StatusForbidden, wantErr: "FORBIDDEN"},
		{name: "unauthenticated", err: usecase.ErrUnauthenticated, wantCode: http.StatusUnauthorized, wantErr: "UNAUTHENTICATED"},
		{name: "store failure", err: fmt.Errorf("boom"), wantCode: http.StatusInternalServerError, wantErr: "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIAssessmentUseCase(ctrl)
			h := NewAssessmentHandler(uc)
			r := newRouter(member)
			r.POST("/v1/organizations/:org_id/assessments", h.Create)

			uc.EXPECT().Create(gomock.Any(), member, gomock.Any()).DoAndReturn(
				func(_ any, _ any, cmd usecase.CreateAssessmentCommand) (entities.Assessment, error) {
					if cmd.OrgID != "org-1" || cmd.Client.Email != "jane@x.com" || cmd.CarYear != 2020 || cmd.ScheduledFor == nil {
						t.Errorf("unexpected command: %+v", cmd)
					}
					if tc.err != nil {
						return entities.Assessment{}, tc.err
					}
					return entities.Assessment{ID: "a-1", OrgID: "org-1", Status: entities.AssessmentStatusPending, Estimate: entities.ZeroEstimate()}, nil
				})

			w := doJSON(r, http.MethodPost, "/v1/organizations/org-1/assessments", assessmentBody)
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, w.Code, w.Body.String())
			}
			if tc.wantErr != "" {
				if got := errorCode(t, w); got != tc.wantErr {
					t.Fatalf("expected code %s, got %s", tc.wantErr, got)
				}
			}
		})
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewAssessmentHandler(mocks.NewMockIAssessmentUseCase(ctrl))
		r := newRouter(member)
		r.POST("/v1/organizations/:org_id/assessments", h.Create)

		w := doJSON(r, http.MethodPost, "/v1/organizations/org-1/assessments", `{"car_year":"twenty"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAssessmentHandler_List(t *testing.T) {
	t.Run("by organization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)
		r := newRouter(member)
		r.GET("/v1/organizations/:org_id/assessments", h.List)

		uc.EXPECT().ListByOrg(gomock.Any(), member, "org-1").Return([]entities.Assessment{{ID: "a-2"}, {ID: "a-1"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/organizations/org-1/assessments", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("calendar range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)
		r := newRouter(member)
		r.GET("/v1/organizations/:org_id/assessments", h.List)

		start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 5, 31, 23, 59, 59, 0, time.UTC)
		uc.EXPECT().ListInRange(gomock.Any(), member, "org-1", start, end).Return([]entities.Assessment{}, nil)

		w := doJSON(r, http.MethodGet, "/v1/organizations/org-1/assessments?start=2026-05-01T00:00:00Z&end=2026-05-31T23:59:59Z", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("half open range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewAssessmentHandler(mocks.NewMockIAssessmentUseCase(ctrl))
		r := newRouter(member)
		r.GET("/v1/organizations/:org_id/assessments", h.List)

		w := doJSON(r, http.MethodGet, "/v1/organizations/org-1/assessments?start=2026-05-01T00:00:00Z", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAssessmentHandler_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAssessmentUseCase(ctrl)
	h := NewAssessmentHandler(uc)
	r := newRouter(outsider)
	r.GET("/v1/admin/assessments", h.ListAll)

	uc.EXPECT().ListAll(gomock.Any(), outsider).Return(nil, usecase.ErrForbidden)

	w := doJSON(r, http.MethodGet, "/v1/admin/assessments", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestAssessmentHandler_GetUpdateDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAssessmentUseCase(ctrl)
	h := NewAssessmentHandler(uc)
	r := newRouter(member)
	r.GET("/v1/assessments/:assessment_id", h.Get)
	r.PATCH("/v1/assessments/:assessment_id/status", h.UpdateStatus)
	r.DELETE("/v1/assessments/:assessment_id", h.Delete)

	uc.EXPECT().Get(gomock.Any(), member, "missing").Return(entities.Assessment{}, usecase.ErrAssessmentNotFound)
	if w := doJSON(r, http.MethodGet, "/v1/assessments/missing", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().UpdateStatus(gomock.Any(), member, "a-1", "archived").Return(entities.Assessment{}, usecase.ErrInvalidStatus)
	if w := doJSON(r, http.MethodPatch, "/v1/assessments/a-1/status", `{"status":"archived"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().UpdateStatus(gomock.Any(), member, "a-1", "reviewed").Return(entities.Assessment{ID: "a-1", Status: entities.AssessmentStatusReviewed}, nil)
	if w := doJSON(r, http.MethodPatch, "/v1/assessments/a-1/status", `{"status":"reviewed"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if w := doJSON(r, http.MethodPatch, "/v1/assessments/a-1/status", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing status, got %d", w.Code)
	}

	uc.EXPECT().Delete(gomock.Any(), member, "a-1").Return(nil)
	if w := doJSON(r, http.MethodDelete, "/v1/assessments/a-1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
