package usecase

import (
	"context"
	"detailshop/internal/domain/auth"
	"detailshop/internal/domain/entities"
	"detailshop/internal/usecase/interfaces"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrSlugTaken            = errors.New("organization slug already in use")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type CreateOrganizationCommand struct {
	ExternalID string
	Name       string
	Slug       string
	LogoURL    string
}

// BookingCatalog is what a public booking page shows for an organization.
type BookingCatalog struct {
	Organization entities.Organization
	Services     []entities.Service
	Modifiers    []entities.Modifier
}

type IOrganizationUseCase interface {
	Create(ctx context.Context, ac auth.Context, cmd CreateOrganizationCommand) (entities.Organization, error)
	GetBySlug(ctx context.Context, slug string) (entities.Organization, error)
}

// IBookingUseCase is the public, slug-addressed surface used by customers.
type IBookingUseCase interface {
	Catalog(ctx context.Context, slug string) (BookingCatalog, error)
	Estimate(ctx context.Context, slug string, serviceIDs, modifierIDs []string) (entities.Estimate, error)
	Book(ctx context.Context, ac auth.Context, slug string, cmd CreateAssessmentCommand) (entities.Assessment, error)
}

type OrganizationUseCase struct {
	repo  interfaces.IOrganizationRepository
	admin auth.AdminPolicy
}

var _ IOrganizationUseCase = (*OrganizationUseCase)(nil)

func NewOrganizationUseCase(repo interfaces.IOrganizationRepository, admin auth.AdminPolicy) *OrganizationUseCase {
	return &OrganizationUseCase{repo: repo, admin: admin}
}

// Create registers a tenant. Only the admin principal may do this.
func (u *OrganizationUseCase) Create(ctx context.Context, ac auth.Context, cmd CreateOrganizationCommand) (entities.Organization, error) {
	if !ac.IsAuthenticated() {
		return entities.Organization{}, ErrUnauthenticated
	}
	if !u.admin.IsAdmin(ac) {
		return entities.Organization{}, ErrForbidden
	}

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.Organization{}, invalid("name", "is required")
	}
	slug := strings.ToLower(strings.TrimSpace(cmd.Slug))
	if !slugPattern.MatchString(slug) {
		return entities.Organization{}, invalid("slug", "must contain lowercase letters, digits and single hyphens")
	}

	existing, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Organization{}, err
	}
	if existing.ID != "" {
		return entities.Organization{}, ErrSlugTaken
	}

	o := entities.Organization{
		ID:         uuid.NewString(),
		ExternalID: strings.TrimSpace(cmd.ExternalID),
		Name:       name,
		Slug:       slug,
		LogoURL:    strings.TrimSpace(cmd.LogoURL),
		CreatedAt:  time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Organization{}, err
	}
	slog.InfoContext(ctx, "[organization][usecase] created", "id", created.ID, "slug", created.Slug)
	return created, nil
}

func (u *OrganizationUseCase) GetBySlug(ctx context.Context, slug string) (entities.Organization, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return entities.Organization{}, invalid("slug", "is required")
	}
	o, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Organization{}, err
	}
	if o.ID == "" {
		return entities.Organization{}, ErrOrganizationNotFound
	}
	return o, nil
}

type BookingUseCase struct {
	orgs        IOrganizationUseCase
	services    interfaces.IServiceRepository
	modifiers   interfaces.IModifierRepository
	estimates   IEstimateUseCase
	assessments *AssessmentUseCase
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	orgs IOrganizationUseCase,
	services interfaces.IServiceRepository,
	modifiers interfaces.IModifierRepository,
	estimates IEstimateUseCase,
	assessments *AssessmentUseCase,
) *BookingUseCase {
	return &BookingUseCase{orgs: orgs, services: services, modifiers: modifiers, estimates: estimates, assessments: assessments}
}

func (u *BookingUseCase) Catalog(ctx context.Context, slug string) (BookingCatalog, error) {
	org, err := u.orgs.GetBySlug(ctx, slug)
	if err != nil {
		return BookingCatalog{}, err
	}
	services, err := u.services.ListByOrgID(ctx, org.ID)
	if err != nil {
		return BookingCatalog{}, err
	}
	modifiers, err := u.modifiers.ListByOrgID(ctx, org.ID)
	if err != nil {
		return BookingCatalog{}, err
	}
	return BookingCatalog{Organization: org, Services: services, Modifiers: modifiers}, nil
}

// Estimate is the anonymous price preview of the booking page.
func (u *BookingUseCase) Estimate(ctx context.Context, slug string, serviceIDs, modifierIDs []string) (entities.Estimate, error) {
	org, err := u.orgs.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.estimates.Calculate(ctx, org.ID, serviceIDs, modifierIDs), nil
}

// Book creates an assessment for the organization behind slug. The caller must
// be signed in but need not be a member: customers book this way.
func (u *BookingUseCase) Book(ctx context.Context, ac auth.Context, slug string, cmd CreateAssessmentCommand) (entities.Assessment, error) {
	if !ac.IsAuthenticated() {
		return entities.Assessment{}, ErrUnauthenticated
	}
	org, err := u.orgs.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Assessment{}, err
	}
	cmd.OrgID = org.ID
	return u.assessments.create(ctx, ac, cmd, channelBooking)
}
