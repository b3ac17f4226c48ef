package interfaces

import (
	"context"
	"detailshop/internal/domain/entities"
)

//go:generate mockgen -source=client_repository_interface.go -destination=mocks/client_repository_interface_mock.go -package=mock_interfaces

// IClientRepository persists clients and serves the indexed lookups used by the
// client resolver.
//
// Find* methods take already-normalized keys (entities.NormalizeEmail, NormalizeName,
// NormalizePhone) and return the first match in insertion order, or a zero Client.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	ListByOrgID(ctx context.Context, orgID string) ([]entities.Client, error)
	SearchByNamePrefix(ctx context.Context, orgID, namePrefix string, limit int) ([]entities.Client, error)

	FindByEmail(ctx context.Context, orgID, emailKey string) (entities.Client, error)
	FindByNameAndPhone(ctx context.Context, orgID, nameKey, phoneKey string) (entities.Client, error)
	FindByName(ctx context.Context, orgID, nameKey string) (entities.Client, error)
}
