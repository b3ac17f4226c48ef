package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"detailshop/internal/config"
	"detailshop/internal/domain/auth"
	"detailshop/internal/domain/entities"
	mock_interfaces "detailshop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type assessmentFixture struct {
	repo      *mock_interfaces.MockIAssessmentRepository
	services  *mock_interfaces.MockIServiceRepository
	modifiers *mock_interfaces.MockIModifierRepository
	clients   *mock_interfaces.MockIClientRepository
	uc        *AssessmentUseCase
}

func newAssessmentFixture(t *testing.T) assessmentFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := assessmentFixture{
		repo:      mock_interfaces.NewMockIAssessmentRepository(ctrl),
		services:  mock_interfaces.NewMockIServiceRepository(ctrl),
		modifiers: mock_interfaces.NewMockIModifierRepository(ctrl),
		clients:   mock_interfaces.NewMockIClientRepository(ctrl),
	}
	f.uc = NewAssessmentUseCase(
		f.repo,
		f.services,
		NewClientResolver(f.clients),
		NewEstimateUseCase(f.services, f.modifiers, config.DefaultPricing()),
		auth.NewAdminPolicy("user_admin"),
	)
	return f
}

var member = auth.Context{PrincipalID: "user_1", OrgID: "org-1"}

func validCommand() CreateAssessmentCommand {
	return CreateAssessmentCommand{
		OrgID:       "org-1",
		Client:      ClientLookup{Name: "Jane Doe", Email: "Jane@X.com"},
		CarMake:     " Honda ",
		CarModel:    "Civic",
		CarYear:     2020,
		ServiceIDs:  []string{"svc-1"},
		ModifierIDs: []string{"mod-1"},
		Notes:       "<b>scratch</b> on door & bumper",
	}
}

func TestAssessmentUseCase_Create(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		f := newAssessmentFixture(t)
		_, err := f.uc.Create(context.Background(), auth.Context{}, validCommand())
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("not a member of the org", func(t *testing.T) {
		f := newAssessmentFixture(t)
		_, err := f.uc.Create(context.Background(), auth.Context{PrincipalID: "user_1", OrgID: "org-2"}, validCommand())
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("validation happens before any lookup", func(t *testing.T) {
		mutate := map[string]func(*CreateAssessmentCommand){
			"short client name": func(c *CreateAssessmentCommand) { c.Client.Name = "J" },
			"blank make":        func(c *CreateAssessmentCommand) { c.CarMake = "  " },
			"blank model":       func(c *CreateAssessmentCommand) { c.CarModel = "" },
			"year too old":      func(c *CreateAssessmentCommand) { c.CarYear = 1800 },
			"year in future":    func(c *CreateAssessmentCommand) { c.CarYear = time.Now().Year() + 2 },
			"no services":       func(c *CreateAssessmentCommand) { c.ServiceIDs = []string{" "} },
		}
		for name, fn := range mutate {
			t.Run(name, func(t *testing.T) {
				f := newAssessmentFixture(t)
				cmd := validCommand()
				fn(&cmd)
				_, err := f.uc.Create(context.Background(), member, cmd)
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
			})
		}
	})

	t.Run("client not found writes nothing", func(t *testing.T) {
		f := newAssessmentFixture(t)
		f.clients.EXPECT().FindByEmail(gomock.Any(), "org-1", "jane@x.com").Return(entities.Client{}, nil)
		f.clients.EXPECT().FindByName(gomock.Any(), "org-1", "jane doe").Return(entities.Client{}, nil)

		_, err := f.uc.Create(context.Background(), member, validCommand())
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("unknown service writes nothing", func(t *testing.T) {
		f := newAssessmentFixture(t)
		f.clients.EXPECT().FindByEmail(gomock.Any(), "org-1", "jane@x.com").Return(entities.Client{ID: "cli-1", OrgID: "org-1", Name: "Jane Doe"}, nil)
		f.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{}, nil)

		_, err := f.uc.Create(context.Background(), member, validCommand())
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("cross-tenant service writes nothing", func(t *testing.T) {
		f := newAssessmentFixture(t)
		f.clients.EXPECT().FindByEmail(gomock.Any(), "org-1", "jane@x.com").Return(entities.Client{ID: "cli-1", OrgID: "org-1", Name: "Jane Doe"}, nil)
		f.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(service("svc-1", "org-2", "Foreign", "10"), nil)

		_, err := f.uc.Create(context.Background(), member, validCommand())
		if !errors.Is(err, ErrServiceCrossTenant) {
			t.Fatalf("expected ErrServiceCrossTenant, got %v", err)
		}
	})

	t.Run("success snapshots the estimate", func(t *testing.T) {
		f := newAssessmentFixture(t)
		f.clients.EXPECT().FindByEmail(gomock.Any(), "org-1", "jane@x.com").Return(entities.Client{ID: "cli-1", OrgID: "org-1", Name: "Jane Doe"}, nil)
		f.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(service("svc-1", "org-1", "Full Detail", "49.99"), nil).Times(2)
		f.modifiers.EXPECT().GetByID(gomock.Any(), "mod-1").Return(modifier("mod-1", "org-1", "Pet Hair", "25.00"), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Assessment{})).DoAndReturn(
			func(_ context.Context, a entities.Assessment) (entities.Assessment, error) {
				if a.ID == "" || a.OrgID != "org-1" || a.ClientID != "cli-1" || a.ClientName != "Jane Doe" {
					t.Fatalf("unexpected assessment: %+v", a)
				}
				if a.Status != entities.AssessmentStatusPending || a.CreatedBy != "user_1" || a.CarMake != "Honda" {
					t.Fatalf("unexpected assessment: %+v", a)
				}
				if a.Notes != "scratch on door & bumper" {
					t.Fatalf("unexpected notes: %q", a.Notes)
				}
				if len(a.ModifierIDs) != 1 || a.ModifierIDs[0] != "mod-1" {
					t.Fatalf("unexpected modifier ids: %v", a.ModifierIDs)
				}
				if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return a, nil
			},
		)

		a, err := f.uc.Create(context.Background(), member, validCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertAmount(t, "total", a.Estimate.Total, "81.18")
	})

	t.Run("explicit client bypasses matching", func(t *testing.T) {
		f := newAssessmentFixture(t)
		cmd := validCommand()
		cmd.Client.ClientID = "cli-9"
		cmd.ModifierIDs = nil

		f.clients.EXPECT().GetByID(gomock.Any(), "cli-9").Return(entities.Client{ID: "cli-9", OrgID: "org-1", Name: "Jane D."}, nil)
		f.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(service("svc-1", "org-1", "Wash", "10"), nil).Times(2)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Assessment) (entities.Assessment, error) {
				return a, nil
			},
		)

		a, err := f.uc.Create(context.Background(), member, cmd)
		if err != nil || a.ClientID != "cli-9" {
			t.Fatalf("expected cli-9, got %+v err=%v", a, err)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		f := newAssessmentFixture(t)
		cmd := validCommand()
		cmd.ModifierIDs = nil

		f.clients.EXPECT().FindByEmail(gomock.Any(), "org-1", "jane@x.com").Return(entities.Client{ID: "cli-1", OrgID: "org-1", Name: "Jane Doe"}, nil)
		f.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(service("svc-1", "org-1", "Wash", "10"), nil).Times(2)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Assessment{}, errors.New("db"))

		_, err := f.uc.Create(context.Background(), member, cmd)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestAssessmentUseCase_Get(t *testing.T) {
	stored := entities.Assessment{ID: "as-1", OrgID: "org-1", Status: entities.AssessmentStatusPending}

	t.Run("not found", func(t *testing.T) {
		f := newAssessmentFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "as-1").Return(entities.Assessment{}, nil)

		_, err := f.uc.Get(context.Background(), member, "as-1")
		if !errors.Is(err, ErrAssessmentNotFound) {
			t.Fatalf("expected ErrAssessmentNotFound, got %v", err)
		}
	})

	t.Run("other org", func(t *testing.T) {
		f := newAssessmentFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "as-1").Return(stored, nil)

		_, err := f.uc.Get(context.Background(), auth.Context{PrincipalID: "user_2", OrgID: "org-2"}, "as-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("admin reads any org", func(t *testing.T) {
		f := newAssessmentFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "as-1").Return(stored, nil)

		a, err := f.uc.Get(context.Background(), auth.Context{PrincipalID: "user_admin"}, "as-1")
		if err != nil || a.ID != "as-1" {
			t.Fatalf("expected as-1, got %+v err=%v", a, err)
		}
	})
}

func TestAssessmentUseCase_Lists(t *testing.T) {
	t.Run("list by active org", func(t *testing.T) {
		f := newAssessmentFixture(t)
		f.repo.EXPECT().ListByOrgID(gomock.Any(), "org-1").Return([]entities.Assessment{{ID: "as-1"}}, nil)

		list, err := f.uc.ListByOrg(context.Background(), member, "")
		if err != nil || len(list) != 1 {
			t.Fatalf("unexpected result %+v err=%v", list, err)
		}
	})

	t.Run("list other org forbidden", func(t *testing.T) {
		f := newAssessmentFixture(t)
		_, err := f.uc.ListByOrg(context.Background(), member, "org-2")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("range end before start", func(t *testing.T) {
		f := newAssessmentFixture(t)
		start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		_, err := f.uc.ListInRange(context.Background(), member, "org-1", start, start.Add(-time.Hour))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("range", func(t *testing.T) {
		f := newAssessmentFixture(t)
		start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
		f.repo.EXPECT().ListScheduledInRange(gomock.Any(), "org-1", start, end).Return([]entities.Assessment{}, nil)

		if _, err := f.uc.ListInRange(context.Background(), member, "org-1", start, end); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("list all requires admin", func(t *testing.T) {
		f := newAssessmentFixture(t)
		_, err := f.uc.ListAll(context.Background(), member)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("list all as admin", func(t *testing.T) {
		f := newAssessmentFixture(t)
		f.repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Assessment{{ID: "as-1"}, {ID: "as-2"}}, nil)

		list, err := f.uc.ListAll(context.Background(), auth.Context{PrincipalID: "user_admin"})
		if err != nil || len(list) != 2 {
			t.Fatalf("unexpected result %+v err=%v", list, err)
		}
	})
}

func TestAssessmentUseCase_UpdateStatusAndDelete(t *testing.T) {
	stored := entities.Assessment{ID: "as-1", OrgID: "org-1", Status: entities.AssessmentStatusPending}

	t.Run("invalid status", func(t *testing.T) {
		f := newAssessmentFixture(t)
		_, err := f.uc.UpdateStatus(context.Background(), member, "as-1", "done")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("update status", func(t *testing.T) {
		f := newAssessmentFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "as-1").Return(stored, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "as-1", entities.AssessmentStatusReviewed).Return(entities.Assessment{ID: "as-1", OrgID: "org-1", Status: entities.AssessmentStatusReviewed}, nil)

		a, err := f.uc.UpdateStatus(context.Background(), member, "as-1", "Reviewed")
		if err != nil || a.Status != entities.AssessmentStatusReviewed {
			t.Fatalf("unexpected result %+v err=%v", a, err)
		}
	})

	t.Run("admin cannot update other org", func(t *testing.T) {
		f := newAssessmentFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "as-1").Return(stored, nil)

		_, err := f.uc.UpdateStatus(context.Background(), auth.Context{PrincipalID: "user_admin"}, "as-1", "complete")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		f := newAssessmentFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "as-1").Return(stored, nil)
		f.repo.EXPECT().Delete(gomock.Any(), "as-1").Return(true, nil)

		if err := f.uc.Delete(context.Background(), member, "as-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete race", func(t *testing.T) {
		f := newAssessmentFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "as-1").Return(stored, nil)
		f.repo.EXPECT().Delete(gomock.Any(), "as-1").Return(false, nil)

		if err := f.uc.Delete(context.Background(), member, "as-1"); !errors.Is(err, ErrAssessmentNotFound) {
			t.Fatalf("expected ErrAssessmentNotFound, got %v", err)
		}
	})
}

func TestSanitizeNotes(t *testing.T) {
	tests := []struct {
		name  string
		notes string
		want  string
	}{
		{name: "plain text", notes: "  swirl marks on hood ", want: "swirl marks on hood"},
		{name: "tags stripped", notes: "<b>scratch</b> on door & bumper", want: "scratch on door & bumper"},
		{name: "quotes kept", notes: `owner's "daily" car`, want: `owner's "daily" car`},
		{name: "encoded script", notes: "&lt;script&gt;alert(1)&lt;/script&gt;", want: ""},
		{name: "encoded img handler", notes: "dent &lt;img src=x onerror=alert(1)&gt;", want: "dent"},
		{name: "double encoded stays escaped", notes: "&amp;lt;script&amp;gt;", want: "&lt;script&gt;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeNotes(tt.notes)
			if got != tt.want {
				t.Fatalf("sanitizeNotes(%q) = %q, want %q", tt.notes, got, tt.want)
			}
			if strings.ContainsAny(got, "<>") {
				t.Fatalf("sanitizeNotes(%q) left markup: %q", tt.notes, got)
			}
		})
	}
}
