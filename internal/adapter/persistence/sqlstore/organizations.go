package sqlstore

import (
	"context"

	"detailshop/internal/domain/entities"
	"detailshop/internal/usecase/interfaces"
)

type organizationRow struct {
	ID         string `db:"id"`
	ExternalID string `db:"external_id"`
	Name       string `db:"name"`
	Slug       string `db:"slug"`
	LogoURL    string `db:"logo_url"`
	CreatedAt  string `db:"created_at"`
}

type OrganizationRepository struct {
	s *Store
}

var _ interfaces.IOrganizationRepository = (*OrganizationRepository)(nil)

const organizationColumns = `id, external_id, name, slug, logo_url, created_at`

func (r *OrganizationRepository) Create(ctx context.Context, o entities.Organization) (entities.Organization, error) {
	row := organizationRow{
		ID:         o.ID,
		ExternalID: o.ExternalID,
		Name:       o.Name,
		Slug:       o.Slug,
		LogoURL:    o.LogoURL,
		CreatedAt:  formatTime(o.CreatedAt),
	}
	err := r.s.insert(ctx,
		`INSERT INTO organizations (`+organizationColumns+`)
		 VALUES (:id, :external_id, :name, :slug, :logo_url, :created_at)`, row)
	if err != nil {
		return entities.Organization{}, err
	}
	return o, nil
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id string) (entities.Organization, error) {
	return r.getBy(ctx, "id", id)
}

func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (entities.Organization, error) {
	return r.getBy(ctx, "slug", slug)
}

func (r *OrganizationRepository) getBy(ctx context.Context, column, value string) (entities.Organization, error) {
	var row organizationRow
	found, err := r.s.get(ctx, &row, `SELECT `+organizationColumns+` FROM organizations WHERE `+column+` = ?`, value)
	if err != nil || !found {
		return entities.Organization{}, err
	}
	return row.entity(), nil
}

func (row organizationRow) entity() entities.Organization {
	return entities.Organization{
		ID:         row.ID,
		ExternalID: row.ExternalID,
		Name:       row.Name,
		Slug:       row.Slug,
		LogoURL:    row.LogoURL,
		CreatedAt:  parseTime(row.CreatedAt),
	}
}
