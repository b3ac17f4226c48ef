package usecase

import (
	"context"
	"errors"
	"testing"

	"detailshop/internal/domain/auth"
	"detailshop/internal/domain/entities"
	mock_interfaces "detailshop/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_CreateService(t *testing.T) {
	cases := []struct {
		name string
		cmd  CreateServiceCommand
	}{
		{name: "blank name", cmd: CreateServiceCommand{Name: " ", UnitPrice: decimal.NewFromInt(10)}},
		{name: "negative price", cmd: CreateServiceCommand{Name: "Wash", UnitPrice: decimal.NewFromInt(-1)}},
		{name: "unknown type", cmd: CreateServiceCommand{Name: "Wash", UnitPrice: decimal.NewFromInt(10), Type: "premium"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := NewCatalogUseCase(mock_interfaces.NewMockIServiceRepository(ctrl), mock_interfaces.NewMockIModifierRepository(ctrl), auth.AdminPolicy{})

			_, err := uc.CreateService(context.Background(), member, tc.cmd)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		services := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewCatalogUseCase(services, mock_interfaces.NewMockIModifierRepository(ctrl), auth.AdminPolicy{})

		services.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.OrgID != "org-1" || s.Type != entities.ServiceTypeBase || s.UnitPrice.Decimal.String() != "49.99" {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)

		_, err := uc.CreateService(context.Background(), member, CreateServiceCommand{OrgID: "org-1", Name: "Full Detail", UnitPrice: decimal.RequireFromString("49.99")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase_Modifiers(t *testing.T) {
	ctrl := gomock.NewController(t)
	modifiers := mock_interfaces.NewMockIModifierRepository(ctrl)
	uc := NewCatalogUseCase(mock_interfaces.NewMockIServiceRepository(ctrl), modifiers, auth.NewAdminPolicy("user_admin"))

	modifiers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, mod entities.Modifier) (entities.Modifier, error) {
			return mod, nil
		},
	)
	modifiers.EXPECT().ListByOrgID(gomock.Any(), "org-1").Return([]entities.Modifier{{ID: "mod-1"}}, nil)

	if _, err := uc.CreateModifier(context.Background(), member, CreateModifierCommand{Name: "Pet Hair", UnitPrice: decimal.NewFromInt(25)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, err := uc.ListModifiers(context.Background(), auth.Context{PrincipalID: "user_admin"}, "org-1")
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected result %v err=%v", list, err)
	}

	if _, err := uc.CreateModifier(context.Background(), auth.Context{PrincipalID: "user_admin"}, CreateModifierCommand{OrgID: "org-1", Name: "Tar", UnitPrice: decimal.NewFromInt(5)}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for admin write, got %v", err)
	}
}
