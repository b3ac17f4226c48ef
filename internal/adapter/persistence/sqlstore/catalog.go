package sqlstore

import (
	"context"

	"detailshop/internal/domain/entities"
	"detailshop/internal/usecase/interfaces"
)

type serviceRow struct {
	ID          string `db:"id"`
	OrgID       string `db:"org_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	UnitPrice   string `db:"unit_price"`
	Type        string `db:"type"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

type ServiceRepository struct {
	s *Store
}

var _ interfaces.IServiceRepository = (*ServiceRepository)(nil)

const serviceColumns = `id, org_id, name, description, unit_price, type, created_at, updated_at`

func (r *ServiceRepository) Create(ctx context.Context, svc entities.Service) (entities.Service, error) {
	row := serviceRow{
		ID:          svc.ID,
		OrgID:       svc.OrgID,
		Name:        svc.Name,
		Description: svc.Description,
		UnitPrice:   entities.FormatAmount(svc.UnitPrice),
		Type:        string(svc.Type),
		CreatedAt:   formatTime(svc.CreatedAt),
		UpdatedAt:   formatTime(svc.UpdatedAt),
	}
	err := r.s.insert(ctx,
		`INSERT INTO services (`+serviceColumns+`)
		 VALUES (:id, :org_id, :name, :description, :unit_price, :type, :created_at, :updated_at)`, row)
	if err != nil {
		return entities.Service{}, err
	}
	return svc, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	var row serviceRow
	found, err := r.s.get(ctx, &row, `SELECT `+serviceColumns+` FROM services WHERE id = ?`, id)
	if err != nil || !found {
		return entities.Service{}, err
	}
	return row.entity(), nil
}

func (r *ServiceRepository) ListByOrgID(ctx context.Context, orgID string) ([]entities.Service, error) {
	var rows []serviceRow
	if err := r.s.selectRows(ctx, &rows, `SELECT `+serviceColumns+` FROM services WHERE org_id = ? ORDER BY created_at, id`, orgID); err != nil {
		return nil, err
	}
	return convert(rows, func(row serviceRow) (entities.Service, error) {
		return row.entity(), nil
	})
}

func (row serviceRow) entity() entities.Service {
	return entities.Service{
		ID:          row.ID,
		OrgID:       row.OrgID,
		Name:        row.Name,
		Description: row.Description,
		UnitPrice:   entities.ParseAmount(row.UnitPrice),
		Type:        entities.ServiceType(row.Type),
		CreatedAt:   parseTime(row.CreatedAt),
		UpdatedAt:   parseTime(row.UpdatedAt),
	}
}

type modifierRow struct {
	ID          string `db:"id"`
	OrgID       string `db:"org_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	UnitPrice   string `db:"unit_price"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

type ModifierRepository struct {
	s *Store
}

var _ interfaces.IModifierRepository = (*ModifierRepository)(nil)

const modifierColumns = `id, org_id, name, description, unit_price, created_at, updated_at`

func (r *ModifierRepository) Create(ctx context.Context, mod entities.Modifier) (entities.Modifier, error) {
	row := modifierRow{
		ID:          mod.ID,
		OrgID:       mod.OrgID,
		Name:        mod.Name,
		Description: mod.Description,
		UnitPrice:   entities.FormatAmount(mod.UnitPrice),
		CreatedAt:   formatTime(mod.CreatedAt),
		UpdatedAt:   formatTime(mod.UpdatedAt),
	}
	err := r.s.insert(ctx,
		`INSERT INTO modifiers (`+modifierColumns+`)
		 VALUES (:id, :org_id, :name, :description, :unit_price, :created_at, :updated_at)`, row)
	if err != nil {
		return entities.Modifier{}, err
	}
	return mod, nil
}

func (r *ModifierRepository) GetByID(ctx context.Context, id string) (entities.Modifier, error) {
	var row modifierRow
	found, err := r.s.get(ctx, &row, `SELECT `+modifierColumns+` FROM modifiers WHERE id = ?`, id)
	if err != nil || !found {
		return entities.Modifier{}, err
	}
	return row.entity(), nil
}

func (r *ModifierRepository) ListByOrgID(ctx context.Context, orgID string) ([]entities.Modifier, error) {
	var rows []modifierRow
	if err := r.s.selectRows(ctx, &rows, `SELECT `+modifierColumns+` FROM modifiers WHERE org_id = ? ORDER BY created_at, id`, orgID); err != nil {
		return nil, err
	}
	return convert(rows, func(row modifierRow) (entities.Modifier, error) {
		return row.entity(), nil
	})
}

func (row modifierRow) entity() entities.Modifier {
	return entities.Modifier{
		ID:          row.ID,
		OrgID:       row.OrgID,
		Name:        row.Name,
		Description: row.Description,
		UnitPrice:   entities.ParseAmount(row.UnitPrice),
		CreatedAt:   parseTime(row.CreatedAt),
		UpdatedAt:   parseTime(row.UpdatedAt),
	}
}
