package interfaces

import (
	"context"
	"detailshop/internal/domain/entities"
)

//go:generate mockgen -source=organization_repository_interface.go -destination=mocks/organization_repository_interface_mock.go -package=mock_interfaces

// IOrganizationRepository persists tenants. Lookups return a zero Organization
// (empty ID) when nothing matches.
type IOrganizationRepository interface {
	Create(ctx context.Context, o entities.Organization) (entities.Organization, error)
	GetByID(ctx context.Context, id string) (entities.Organization, error)
	GetBySlug(ctx context.Context, slug string) (entities.Organization, error)
}
