package interfaces

import (
	"context"
	"detailshop/internal/domain/entities"
)

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_interface_mock.go -package=mock_interfaces

// IServiceRepository persists an organization's services.
//
// GetByID is a plain primary-key read: it does not filter by organization, callers
// are responsible for ownership checks.
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	ListByOrgID(ctx context.Context, orgID string) ([]entities.Service, error)
}

// IModifierRepository persists an organization's condition modifiers.
// Same ownership contract as IServiceRepository.
type IModifierRepository interface {
	Create(ctx context.Context, mod entities.Modifier) (entities.Modifier, error)
	GetByID(ctx context.Context, id string) (entities.Modifier, error)
	ListByOrgID(ctx context.Context, orgID string) ([]entities.Modifier, error)
}
