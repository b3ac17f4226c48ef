package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"detailshop/internal/config"
	"detailshop/internal/domain/auth"
	"detailshop/internal/domain/entities"
	mock_interfaces "detailshop/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type paymentFixture struct {
	repo        *mock_interfaces.MockIAssessmentPaymentRepository
	assessments *mock_interfaces.MockIAssessmentRepository
	gateway     *mock_interfaces.MockIPaymentGateway
}

func newPaymentFixture(t *testing.T) paymentFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	return paymentFixture{
		repo:        mock_interfaces.NewMockIAssessmentPaymentRepository(ctrl),
		assessments: mock_interfaces.NewMockIAssessmentRepository(ctrl),
		gateway:     mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
}

func (f paymentFixture) useCase(settings config.Payments) *AssessmentPaymentUseCase {
	return NewAssessmentPaymentUseCase(f.repo, f.assessments, f.gateway, settings)
}

func payable() entities.Assessment {
	return entities.Assessment{
		ID:       "as-1",
		OrgID:    "org-1",
		CarMake:  "Honda",
		CarModel: "Civic",
		CarYear:  2020,
		Status:   entities.AssessmentStatusReviewed,
		Estimate: entities.Estimate{Total: decimal.RequireFromString("81.18")},
	}
}

func TestAssessmentPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("empty assessment id", func(t *testing.T) {
		f := newPaymentFixture(t)
		_, err := f.useCase(config.Payments{}).CreateAndApprove(context.Background(), member, " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		f := newPaymentFixture(t)
		_, err := f.useCase(config.Payments{}).CreateAndApprove(context.Background(), member, "as-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("assessment not found", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.assessments.EXPECT().GetByID(gomock.Any(), "as-1").Return(entities.Assessment{}, nil)

		_, err := f.useCase(config.Payments{}).CreateAndApprove(context.Background(), member, "as-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrAssessmentNotFound) {
			t.Fatalf("expected ErrAssessmentNotFound, got %v", err)
		}
	})

	t.Run("other org", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.assessments.EXPECT().GetByID(gomock.Any(), "as-1").Return(payable(), nil)

		_, err := f.useCase(config.Payments{}).CreateAndApprove(context.Background(), auth.Context{PrincipalID: "user_2", OrgID: "org-2"}, "as-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("pending assessment is not payable", func(t *testing.T) {
		f := newPaymentFixture(t)
		a := payable()
		a.Status = entities.AssessmentStatusPending
		f.assessments.EXPECT().GetByID(gomock.Any(), "as-1").Return(a, nil)

		_, err := f.useCase(config.Payments{}).CreateAndApprove(context.Background(), member, "as-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrAssessmentNotPayable) {
			t.Fatalf("expected ErrAssessmentNotPayable, got %v", err)
		}
	})

	t.Run("missing payer", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.assessments.EXPECT().GetByID(gomock.Any(), "as-1").Return(payable(), nil)

		_, err := f.useCase(config.Payments{AccessToken: "APP_USR-1"}).CreateAndApprove(context.Background(), member, "as-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})
}

func TestAssessmentPaymentUseCase_CreateAndApprove_Success(t *testing.T) {
	t.Run("amount comes from the estimate", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.assessments.EXPECT().GetByID(gomock.Any(), "as-1").Return(payable(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				if req["transaction_amount"] != 81.18 || req["external_reference"] != "as-1" {
					t.Fatalf("unexpected payload: %v", req)
				}
				payer := req["payer"].(map[string]any)
				if payer["email"] != "test_user_br@testuser.com" || payer["type"] != "customer" {
					t.Fatalf("unexpected payer: %v", payer)
				}
				return "123", "approved", json.RawMessage(`{"id":123,"status":"approved"}`), nil
			},
		)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.AssessmentPayment) (entities.AssessmentPayment, error) {
				if p.ID != "123" || p.AssessmentID != "as-1" || p.OrgID != "org-1" || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if !p.Amount.Equal(decimal.RequireFromString("81.18")) || p.ProviderPayload["status"] != "approved" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		uc := f.useCase(config.Payments{AccessToken: "TEST-abc"})
		_, err := uc.CreateAndApprove(context.Background(), member, "as-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sandbox payer id mapped to email", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.assessments.EXPECT().GetByID(gomock.Any(), "as-1").Return(payable(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				_ = json.Unmarshal(payload, &req)
				payer := req["payer"].(map[string]any)
				if payer["email"] != "buyer@test.com" || payer["id"] != nil {
					t.Fatalf("unexpected payer: %v", payer)
				}
				return "9", "in_process", json.RawMessage(`{"id":9}`), nil
			},
		)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.AssessmentPayment) (entities.AssessmentPayment, error) {
				return p, nil
			},
		)

		uc := f.useCase(config.Payments{AccessToken: "TEST-abc", TestPayerUserID: "42", TestPayerEmail: "buyer@test.com"})
		p, err := uc.CreateAndApprove(context.Background(), member, "as-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":42}}`))
		if err != nil || p.Status != entities.PaymentStatusPending {
			t.Fatalf("unexpected result %+v err=%v", p, err)
		}
	})

	t.Run("mock mode accepts empty payload", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.assessments.EXPECT().GetByID(gomock.Any(), "as-1").Return(payable(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("1", "approved", json.RawMessage(`{}`), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.AssessmentPayment) (entities.AssessmentPayment, error) {
				return p, nil
			},
		)

		if _, err := f.useCase(config.Payments{Mock: true}).CreateAndApprove(context.Background(), member, "as-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAssessmentPaymentUseCase_CreateAndApprove_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newPaymentFixture(t)
			f.assessments.EXPECT().GetByID(gomock.Any(), "as-1").Return(payable(), nil)
			f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := f.useCase(config.Payments{}).CreateAndApprove(context.Background(), member, "as-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.assessments.EXPECT().GetByID(gomock.Any(), "as-1").Return(payable(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := f.useCase(config.Payments{}).CreateAndApprove(context.Background(), member, "as-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestAssessmentPaymentUseCase_ListByAssessment(t *testing.T) {
	f := newPaymentFixture(t)
	f.assessments.EXPECT().GetByID(gomock.Any(), "as-1").Return(payable(), nil)
	f.repo.EXPECT().ListByAssessmentID(gomock.Any(), "as-1").Return([]entities.AssessmentPayment{{ID: "1"}}, nil)

	list, err := f.useCase(config.Payments{}).ListByAssessment(context.Background(), member, "as-1")
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected result %v err=%v", list, err)
	}
}
