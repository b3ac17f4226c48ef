package usecase

import (
	"context"
	"errors"
	"testing"

	"detailshop/internal/config"
	"detailshop/internal/domain/auth"
	"detailshop/internal/domain/entities"
	mock_interfaces "detailshop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var admin = auth.Context{PrincipalID: "user_admin"}

func TestOrganizationUseCase_Create(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewOrganizationUseCase(mock_interfaces.NewMockIOrganizationRepository(ctrl), auth.NewAdminPolicy("user_admin"))

		_, err := uc.Create(context.Background(), member, CreateOrganizationCommand{Name: "Shine", Slug: "shine"})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("invalid slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewOrganizationUseCase(mock_interfaces.NewMockIOrganizationRepository(ctrl), auth.NewAdminPolicy("user_admin"))

		_, err := uc.Create(context.Background(), admin, CreateOrganizationCommand{Name: "Shine", Slug: "shine--co"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("slug taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrganizationRepository(ctrl)
		uc := NewOrganizationUseCase(repo, auth.NewAdminPolicy("user_admin"))

		repo.EXPECT().GetBySlug(gomock.Any(), "shine").Return(entities.Organization{ID: "org-1"}, nil)

		_, err := uc.Create(context.Background(), admin, CreateOrganizationCommand{Name: "Shine", Slug: "Shine"})
		if !errors.Is(err, ErrSlugTaken) {
			t.Fatalf("expected ErrSlugTaken, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrganizationRepository(ctrl)
		uc := NewOrganizationUseCase(repo, auth.NewAdminPolicy("user_admin"))

		repo.EXPECT().GetBySlug(gomock.Any(), "shine-co").Return(entities.Organization{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Organization) (entities.Organization, error) {
				return o, nil
			},
		)

		o, err := uc.Create(context.Background(), admin, CreateOrganizationCommand{ExternalID: "org_ext", Name: "Shine Co", Slug: "shine-co"})
		if err != nil || o.ID == "" || o.Slug != "shine-co" {
			t.Fatalf("unexpected result %+v err=%v", o, err)
		}
	})
}

func TestBookingUseCase(t *testing.T) {
	org := entities.Organization{ID: "org-1", Name: "Shine", Slug: "shine"}

	newBooking := func(t *testing.T) (*BookingUseCase, assessmentFixture, *mock_interfaces.MockIOrganizationRepository) {
		f := newAssessmentFixture(t)
		orgs := mock_interfaces.NewMockIOrganizationRepository(gomock.NewController(t))
		uc := NewBookingUseCase(
			NewOrganizationUseCase(orgs, auth.AdminPolicy{}),
			f.services,
			f.modifiers,
			NewEstimateUseCase(f.services, f.modifiers, config.DefaultPricing()),
			f.uc,
		)
		return uc, f, orgs
	}

	t.Run("unknown slug", func(t *testing.T) {
		uc, _, orgs := newBooking(t)
		orgs.EXPECT().GetBySlug(gomock.Any(), "nope").Return(entities.Organization{}, nil)

		_, err := uc.Catalog(context.Background(), "nope")
		if !errors.Is(err, ErrOrganizationNotFound) {
			t.Fatalf("expected ErrOrganizationNotFound, got %v", err)
		}
	})

	t.Run("catalog", func(t *testing.T) {
		uc, f, orgs := newBooking(t)
		orgs.EXPECT().GetBySlug(gomock.Any(), "shine").Return(org, nil)
		f.services.EXPECT().ListByOrgID(gomock.Any(), "org-1").Return([]entities.Service{service("svc-1", "org-1", "Wash", "10")}, nil)
		f.modifiers.EXPECT().ListByOrgID(gomock.Any(), "org-1").Return([]entities.Modifier{}, nil)

		c, err := uc.Catalog(context.Background(), "shine")
		if err != nil || c.Organization.ID != "org-1" || len(c.Services) != 1 {
			t.Fatalf("unexpected catalog %+v err=%v", c, err)
		}
	})

	t.Run("estimate preview", func(t *testing.T) {
		uc, f, orgs := newBooking(t)
		orgs.EXPECT().GetBySlug(gomock.Any(), "shine").Return(org, nil)
		f.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(service("svc-1", "org-1", "Full Detail", "49.99"), nil)

		e, err := uc.Estimate(context.Background(), "shine", []string{"svc-1"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertAmount(t, "total", e.Total, "54.11")
	})

	t.Run("book requires sign-in", func(t *testing.T) {
		uc, _, _ := newBooking(t)
		_, err := uc.Book(context.Background(), auth.Context{}, "shine", validCommand())
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("customer books without membership", func(t *testing.T) {
		uc, f, orgs := newBooking(t)
		cmd := validCommand()
		cmd.OrgID = "ignored"
		cmd.ModifierIDs = nil

		orgs.EXPECT().GetBySlug(gomock.Any(), "shine").Return(org, nil)
		f.clients.EXPECT().FindByEmail(gomock.Any(), "org-1", "jane@x.com").Return(entities.Client{ID: "cli-1", OrgID: "org-1", Name: "Jane Doe"}, nil)
		f.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(service("svc-1", "org-1", "Wash", "10"), nil).Times(2)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Assessment) (entities.Assessment, error) {
				return a, nil
			},
		)

		a, err := uc.Book(context.Background(), auth.Context{PrincipalID: "customer_1"}, "shine", cmd)
		if err != nil || a.OrgID != "org-1" || a.CreatedBy != "customer_1" {
			t.Fatalf("unexpected result %+v err=%v", a, err)
		}
	})
}
