package usecase

import (
	"context"
	"detailshop/internal/domain/auth"
	"detailshop/internal/domain/entities"
	"detailshop/internal/infrastructure/metrics"
	"detailshop/internal/usecase/interfaces"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

var (
	ErrServiceNotFound    = errors.New("service not found")
	ErrServiceCrossTenant = errors.New("service belongs to another organization")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrInvalidStatus      = errors.New("invalid assessment status")
)

const (
	firstCarYear    = 1886
	maxNotesLength  = 2000
	maxCarTextField = 64
)

// Channels an assessment can be created through.
const (
	channelDashboard = "dashboard"
	channelBooking   = "booking"
)

var notesPolicy = bluemonday.StrictPolicy()

// notesUnescaper reverts the text escaping the strict policy applies, except
// for angle brackets.
var notesUnescaper = strings.NewReplacer("&amp;", "&", "&#39;", "'", "&#34;", `"`)

type CreateAssessmentCommand struct {
	OrgID        string
	Client       ClientLookup
	CarMake      string
	CarModel     string
	CarYear      int
	CarColor     string
	ServiceIDs   []string
	ModifierIDs  []string
	Notes        string
	ScheduledFor *time.Time
}

// IAssessmentUseCase creates and manages assessments.
//
// Create either persists exactly one assessment or returns an error with nothing
// written.
type IAssessmentUseCase interface {
	Create(ctx context.Context, ac auth.Context, cmd CreateAssessmentCommand) (entities.Assessment, error)
	Get(ctx context.Context, ac auth.Context, id string) (entities.Assessment, error)
	ListByOrg(ctx context.Context, ac auth.Context, orgID string) ([]entities.Assessment, error)
	ListInRange(ctx context.Context, ac auth.Context, orgID string, start, end time.Time) ([]entities.Assessment, error)
	ListAll(ctx context.Context, ac auth.Context) ([]entities.Assessment, error)
	UpdateStatus(ctx context.Context, ac auth.Context, id, status string) (entities.Assessment, error)
	Delete(ctx context.Context, ac auth.Context, id string) error
}

type AssessmentUseCase struct {
	repo      interfaces.IAssessmentRepository
	services  interfaces.IServiceRepository
	resolver  IClientResolver
	estimates IEstimateUseCase
	admin     auth.AdminPolicy
}

var _ IAssessmentUseCase = (*AssessmentUseCase)(nil)

func NewAssessmentUseCase(
	repo interfaces.IAssessmentRepository,
	services interfaces.IServiceRepository,
	resolver IClientResolver,
	estimates IEstimateUseCase,
	admin auth.AdminPolicy,
) *AssessmentUseCase {
	return &AssessmentUseCase{repo: repo, services: services, resolver: resolver, estimates: estimates, admin: admin}
}

func (u *AssessmentUseCase) Create(ctx context.Context, ac auth.Context, cmd CreateAssessmentCommand) (entities.Assessment, error) {
	if !ac.IsAuthenticated() {
		return entities.Assessment{}, ErrUnauthenticated
	}
	cmd.OrgID = strings.TrimSpace(cmd.OrgID)
	if !ac.CanAccessOrg(cmd.OrgID) {
		slog.WarnContext(ctx, "[assessment][usecase] org access denied", "principal", ac.PrincipalID, "org_id", cmd.OrgID)
		return entities.Assessment{}, ErrForbidden
	}
	return u.create(ctx, ac, cmd, channelDashboard)
}

// create runs validation, client resolution, service checks and pricing before
// the single insert. The caller has already authorized ac for cmd.OrgID.
func (u *AssessmentUseCase) create(ctx context.Context, ac auth.Context, cmd CreateAssessmentCommand, channel string) (entities.Assessment, error) {
	cmd, err := normalizeCreateCommand(cmd)
	if err != nil {
		return entities.Assessment{}, err
	}

	client, err := u.resolver.Resolve(ctx, cmd.OrgID, cmd.Client)
	if err != nil {
		return entities.Assessment{}, err
	}

	if err := u.checkServices(ctx, cmd.OrgID, cmd.ServiceIDs); err != nil {
		return entities.Assessment{}, err
	}

	estimate := u.estimates.Calculate(ctx, cmd.OrgID, cmd.ServiceIDs, cmd.ModifierIDs)

	now := time.Now().UTC()
	a := entities.Assessment{
		ID:           uuid.NewString(),
		OrgID:        cmd.OrgID,
		ClientID:     client.ID,
		ClientName:   client.Name,
		CreatedBy:    ac.PrincipalID,
		CarMake:      cmd.CarMake,
		CarModel:     cmd.CarModel,
		CarYear:      cmd.CarYear,
		CarColor:     cmd.CarColor,
		ServiceIDs:   cmd.ServiceIDs,
		ModifierIDs:  pricedModifierIDs(estimate),
		Notes:        cmd.Notes,
		Status:       entities.AssessmentStatusPending,
		ScheduledFor: cmd.ScheduledFor,
		Estimate:     estimate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		slog.ErrorContext(ctx, "[assessment][usecase] create failed", "org_id", a.OrgID, "err", err)
		return entities.Assessment{}, err
	}
	metrics.AssessmentsCreated.WithLabelValues(channel).Inc()
	slog.InfoContext(ctx, "[assessment][usecase] created",
		"id", created.ID,
		"org_id", created.OrgID,
		"client_id", created.ClientID,
		"channel", channel,
		"total", created.Estimate.Total.String(),
	)
	return created, nil
}

func normalizeCreateCommand(cmd CreateAssessmentCommand) (CreateAssessmentCommand, error) {
	if err := cmd.Client.validate(); err != nil {
		return cmd, err
	}
	cmd.Client.Name = strings.TrimSpace(cmd.Client.Name)
	cmd.CarMake = strings.TrimSpace(cmd.CarMake)
	cmd.CarModel = strings.TrimSpace(cmd.CarModel)
	cmd.CarColor = strings.TrimSpace(cmd.CarColor)

	switch {
	case cmd.CarMake == "":
		return cmd, invalid("car_make", "is required")
	case utf8.RuneCountInString(cmd.CarMake) > maxCarTextField:
		return cmd, invalid("car_make", "is too long")
	case cmd.CarModel == "":
		return cmd, invalid("car_model", "is required")
	case utf8.RuneCountInString(cmd.CarModel) > maxCarTextField:
		return cmd, invalid("car_model", "is too long")
	case utf8.RuneCountInString(cmd.CarColor) > maxCarTextField:
		return cmd, invalid("car_color", "is too long")
	}

	if maxYear := time.Now().UTC().Year() + 1; cmd.CarYear < firstCarYear || cmd.CarYear > maxYear {
		return cmd, invalid("car_year", fmt.Sprintf("must be between %d and %d", firstCarYear, maxYear))
	}

	cmd.ServiceIDs = uniqueIDs(cmd.ServiceIDs)
	if len(cmd.ServiceIDs) == 0 {
		return cmd, invalid("service_ids", "must select at least one service")
	}
	cmd.ModifierIDs = uniqueIDs(cmd.ModifierIDs)

	cmd.Notes = sanitizeNotes(cmd.Notes)
	if utf8.RuneCountInString(cmd.Notes) > maxNotesLength {
		return cmd, invalid("notes", "is too long")
	}

	if cmd.ScheduledFor != nil {
		t := cmd.ScheduledFor.UTC()
		cmd.ScheduledFor = &t
	}
	return cmd, nil
}

// sanitizeNotes strips markup, including entity-encoded markup, and returns
// plain text. Angle brackets stay escaped.
func sanitizeNotes(notes string) string {
	return strings.TrimSpace(notesUnescaper.Replace(notesPolicy.Sanitize(html.UnescapeString(notes))))
}

// checkServices requires every selected service to exist in orgID. The estimate
// alone would silently drop them.
func (u *AssessmentUseCase) checkServices(ctx context.Context, orgID string, ids []string) error {
	for _, id := range ids {
		s, err := u.services.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if s.ID == "" {
			return fmt.Errorf("%w: %s", ErrServiceNotFound, id)
		}
		if s.OrgID != orgID {
			slog.WarnContext(ctx, "[assessment][usecase] cross-tenant service reference", "org_id", orgID, "service_id", id)
			return fmt.Errorf("%w: %s", ErrServiceCrossTenant, id)
		}
	}
	return nil
}

func pricedModifierIDs(e entities.Estimate) []string {
	ids := make([]string, 0)
	for _, it := range e.LineItems {
		if it.Type == entities.LineItemModifier {
			ids = append(ids, it.RefID)
		}
	}
	return ids
}

func (u *AssessmentUseCase) Get(ctx context.Context, ac auth.Context, id string) (entities.Assessment, error) {
	if !ac.IsAuthenticated() {
		return entities.Assessment{}, ErrUnauthenticated
	}
	a, err := u.load(ctx, id)
	if err != nil {
		return entities.Assessment{}, err
	}
	if !ac.CanAccessOrg(a.OrgID) && !u.admin.IsAdmin(ac) {
		return entities.Assessment{}, ErrForbidden
	}
	return a, nil
}

func (u *AssessmentUseCase) load(ctx context.Context, id string) (entities.Assessment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Assessment{}, invalid("id", "is required")
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Assessment{}, err
	}
	if a.ID == "" {
		return entities.Assessment{}, ErrAssessmentNotFound
	}
	return a, nil
}

func (u *AssessmentUseCase) ListByOrg(ctx context.Context, ac auth.Context, orgID string) ([]entities.Assessment, error) {
	orgID, err := readableOrg(ac, u.admin, orgID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByOrgID(ctx, orgID)
}

func (u *AssessmentUseCase) ListInRange(ctx context.Context, ac auth.Context, orgID string, start, end time.Time) ([]entities.Assessment, error) {
	orgID, err := readableOrg(ac, u.admin, orgID)
	if err != nil {
		return nil, err
	}
	if start.IsZero() || end.IsZero() {
		return nil, invalid("range", "start and end are required")
	}
	if end.Before(start) {
		return nil, invalid("range", "end must not be before start")
	}
	return u.repo.ListScheduledInRange(ctx, orgID, start.UTC(), end.UTC())
}

func (u *AssessmentUseCase) ListAll(ctx context.Context, ac auth.Context) ([]entities.Assessment, error) {
	if !ac.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}
	if !u.admin.IsAdmin(ac) {
		slog.WarnContext(ctx, "[assessment][usecase] admin listing denied", "principal", ac.PrincipalID)
		return nil, ErrForbidden
	}
	return u.repo.ListAll(ctx)
}

func (u *AssessmentUseCase) UpdateStatus(ctx context.Context, ac auth.Context, id, status string) (entities.Assessment, error) {
	if !ac.IsAuthenticated() {
		return entities.Assessment{}, ErrUnauthenticated
	}
	st, ok := entities.ParseAssessmentStatus(status)
	if !ok {
		return entities.Assessment{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	a, err := u.load(ctx, id)
	if err != nil {
		return entities.Assessment{}, err
	}
	if !ac.CanAccessOrg(a.OrgID) {
		return entities.Assessment{}, ErrForbidden
	}

	updated, err := u.repo.UpdateStatus(ctx, a.ID, st)
	if err != nil {
		return entities.Assessment{}, err
	}
	if updated.ID == "" {
		return entities.Assessment{}, ErrAssessmentNotFound
	}
	slog.InfoContext(ctx, "[assessment][usecase] status updated", "id", a.ID, "from", a.Status, "to", st)
	return updated, nil
}

func (u *AssessmentUseCase) Delete(ctx context.Context, ac auth.Context, id string) error {
	if !ac.IsAuthenticated() {
		return ErrUnauthenticated
	}
	a, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if !ac.CanAccessOrg(a.OrgID) {
		return ErrForbidden
	}
	deleted, err := u.repo.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAssessmentNotFound
	}
	slog.InfoContext(ctx, "[assessment][usecase] deleted", "id", a.ID, "org_id", a.OrgID)
	return nil
}

// readableOrg resolves the organization a listing runs against. An empty orgID
// means the caller's active organization.
func readableOrg(ac auth.Context, admin auth.AdminPolicy, orgID string) (string, error) {
	if !ac.IsAuthenticated() {
		return "", ErrUnauthenticated
	}
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		orgID = ac.OrgID
	}
	if orgID == "" {
		return "", invalid("org_id", "is required")
	}
	if !ac.CanAccessOrg(orgID) && !admin.IsAdmin(ac) {
		return "", ErrForbidden
	}
	return orgID, nil
}

// writableOrg requires membership; the admin principal is read-only elsewhere.
func writableOrg(ac auth.Context, orgID string) (string, error) {
	if !ac.IsAuthenticated() {
		return "", ErrUnauthenticated
	}
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		orgID = ac.OrgID
	}
	if !ac.CanAccessOrg(orgID) {
		return "", ErrForbidden
	}
	return orgID, nil
}
