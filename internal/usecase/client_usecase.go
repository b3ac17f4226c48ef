package usecase

import (
	"context"
	"detailshop/internal/domain/auth"
	"detailshop/internal/domain/entities"
	"detailshop/internal/usecase/interfaces"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

const clientSearchLimit = 10

type CreateClientCommand struct {
	OrgID string
	Name  string
	Email string
	Phone string
}

type IClientUseCase interface {
	Create(ctx context.Context, ac auth.Context, cmd CreateClientCommand) (entities.Client, error)
	GetByID(ctx context.Context, ac auth.Context, id string) (entities.Client, error)
	ListByOrg(ctx context.Context, ac auth.Context, orgID string) ([]entities.Client, error)
	SearchByName(ctx context.Context, ac auth.Context, orgID, name string) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo  interfaces.IClientRepository
	admin auth.AdminPolicy
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, admin auth.AdminPolicy) *ClientUseCase {
	return &ClientUseCase{repo: repo, admin: admin}
}

func (u *ClientUseCase) Create(ctx context.Context, ac auth.Context, cmd CreateClientCommand) (entities.Client, error) {
	orgID, err := writableOrg(ac, cmd.OrgID)
	if err != nil {
		return entities.Client{}, err
	}
	lookup := ClientLookup{Name: cmd.Name}
	if err := lookup.validate(); err != nil {
		return entities.Client{}, err
	}
	email := strings.TrimSpace(cmd.Email)
	if email != "" && !strings.Contains(email, "@") {
		return entities.Client{}, invalid("email", "is not a valid address")
	}

	c := entities.Client{
		ID:        uuid.NewString(),
		OrgID:     orgID,
		Name:      strings.TrimSpace(cmd.Name),
		Email:     email,
		Phone:     strings.TrimSpace(cmd.Phone),
		CreatedBy: ac.PrincipalID,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		slog.ErrorContext(ctx, "[client][usecase] create failed", "org_id", orgID, "err", err)
		return entities.Client{}, err
	}
	slog.InfoContext(ctx, "[client][usecase] created", "id", created.ID, "org_id", orgID)
	return created, nil
}

// GetByID hides clients of other organizations behind ErrClientNotFound.
func (u *ClientUseCase) GetByID(ctx context.Context, ac auth.Context, id string) (entities.Client, error) {
	if !ac.IsAuthenticated() {
		return entities.Client{}, ErrUnauthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, invalid("id", "is required")
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" || (!ac.CanAccessOrg(c.OrgID) && !u.admin.IsAdmin(ac)) {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) ListByOrg(ctx context.Context, ac auth.Context, orgID string) ([]entities.Client, error) {
	orgID, err := readableOrg(ac, u.admin, orgID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByOrgID(ctx, orgID)
}

// SearchByName is the type-ahead lookup: normalized name prefix, at most 10 results.
func (u *ClientUseCase) SearchByName(ctx context.Context, ac auth.Context, orgID, name string) ([]entities.Client, error) {
	orgID, err := readableOrg(ac, u.admin, orgID)
	if err != nil {
		return nil, err
	}
	prefix := entities.NormalizeName(name)
	if prefix == "" {
		return []entities.Client{}, nil
	}
	return u.repo.SearchByNamePrefix(ctx, orgID, prefix, clientSearchLimit)
}
