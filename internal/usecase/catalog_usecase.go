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
	"github.com/shopspring/decimal"
)

const maxCatalogNameLength = 120

type CreateServiceCommand struct {
	OrgID       string
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	Type        entities.ServiceType
}

type CreateModifierCommand struct {
	OrgID       string
	Name        string
	Description string
	UnitPrice   decimal.Decimal
}

// ICatalogUseCase manages the services and modifiers an organization sells.
type ICatalogUseCase interface {
	CreateService(ctx context.Context, ac auth.Context, cmd CreateServiceCommand) (entities.Service, error)
	ListServices(ctx context.Context, ac auth.Context, orgID string) ([]entities.Service, error)
	CreateModifier(ctx context.Context, ac auth.Context, cmd CreateModifierCommand) (entities.Modifier, error)
	ListModifiers(ctx context.Context, ac auth.Context, orgID string) ([]entities.Modifier, error)
}

type CatalogUseCase struct {
	services  interfaces.IServiceRepository
	modifiers interfaces.IModifierRepository
	admin     auth.AdminPolicy
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(services interfaces.IServiceRepository, modifiers interfaces.IModifierRepository, admin auth.AdminPolicy) *CatalogUseCase {
	return &CatalogUseCase{services: services, modifiers: modifiers, admin: admin}
}

func (u *CatalogUseCase) CreateService(ctx context.Context, ac auth.Context, cmd CreateServiceCommand) (entities.Service, error) {
	orgID, err := writableOrg(ac, cmd.OrgID)
	if err != nil {
		return entities.Service{}, err
	}
	name, err := validateCatalogItem(cmd.Name, cmd.UnitPrice)
	if err != nil {
		return entities.Service{}, err
	}
	if cmd.Type == "" {
		cmd.Type = entities.ServiceTypeBase
	}
	if !cmd.Type.IsValid() {
		return entities.Service{}, invalid("type", "must be base or add_on")
	}

	now := time.Now().UTC()
	s := entities.Service{
		ID:          uuid.NewString(),
		OrgID:       orgID,
		Name:        name,
		Description: strings.TrimSpace(cmd.Description),
		UnitPrice:   decimal.NewNullDecimal(entities.Round2(cmd.UnitPrice)),
		Type:        cmd.Type,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.services.Create(ctx, s)
	if err != nil {
		slog.ErrorContext(ctx, "[catalog][usecase] create service failed", "org_id", orgID, "err", err)
		return entities.Service{}, err
	}
	slog.InfoContext(ctx, "[catalog][usecase] service created", "id", created.ID, "org_id", orgID, "unit_price", s.UnitPrice.Decimal.String())
	return created, nil
}

func (u *CatalogUseCase) ListServices(ctx context.Context, ac auth.Context, orgID string) ([]entities.Service, error) {
	orgID, err := readableOrg(ac, u.admin, orgID)
	if err != nil {
		return nil, err
	}
	return u.services.ListByOrgID(ctx, orgID)
}

func (u *CatalogUseCase) CreateModifier(ctx context.Context, ac auth.Context, cmd CreateModifierCommand) (entities.Modifier, error) {
	orgID, err := writableOrg(ac, cmd.OrgID)
	if err != nil {
		return entities.Modifier{}, err
	}
	name, err := validateCatalogItem(cmd.Name, cmd.UnitPrice)
	if err != nil {
		return entities.Modifier{}, err
	}

	now := time.Now().UTC()
	mod := entities.Modifier{
		ID:          uuid.NewString(),
		OrgID:       orgID,
		Name:        name,
		Description: strings.TrimSpace(cmd.Description),
		UnitPrice:   decimal.NewNullDecimal(entities.Round2(cmd.UnitPrice)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.modifiers.Create(ctx, mod)
	if err != nil {
		slog.ErrorContext(ctx, "[catalog][usecase] create modifier failed", "org_id", orgID, "err", err)
		return entities.Modifier{}, err
	}
	slog.InfoContext(ctx, "[catalog][usecase] modifier created", "id", created.ID, "org_id", orgID)
	return created, nil
}

func (u *CatalogUseCase) ListModifiers(ctx context.Context, ac auth.Context, orgID string) ([]entities.Modifier, error) {
	orgID, err := readableOrg(ac, u.admin, orgID)
	if err != nil {
		return nil, err
	}
	return u.modifiers.ListByOrgID(ctx, orgID)
}

func validateCatalogItem(name string, price decimal.Decimal) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("name", "is required")
	}
	if len([]rune(name)) > maxCatalogNameLength {
		return "", invalid("name", "is too long")
	}
	if price.IsNegative() {
		return "", invalid("unit_price", "must not be negative")
	}
	return name, nil
}
