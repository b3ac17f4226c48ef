package sqlstore

import (
	"context"

	"detailshop/internal/domain/entities"
	"detailshop/internal/usecase/interfaces"
)

// clientRow carries the normalized lookup keys on insert; reads select the
// display columns only.
type clientRow struct {
	ID        string `db:"id"`
	OrgID     string `db:"org_id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	CreatedBy string `db:"created_by"`
	CreatedAt string `db:"created_at"`
	NameNorm  string `db:"name_norm"`
	EmailNorm string `db:"email_norm"`
	PhoneNorm string `db:"phone_norm"`
}

type ClientRepository struct {
	s *Store
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

const clientColumns = `id, org_id, name, email, phone, created_by, created_at`

func (r *ClientRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	row := clientRow{
		ID:        c.ID,
		OrgID:     c.OrgID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedBy: c.CreatedBy,
		CreatedAt: formatTime(c.CreatedAt),
		NameNorm:  c.NameKey(),
		EmailNorm: c.EmailKey(),
		PhoneNorm: c.PhoneKey(),
	}
	err := r.s.insert(ctx,
		`INSERT INTO clients (`+clientColumns+`, name_norm, email_norm, phone_norm)
		 VALUES (:id, :org_id, :name, :email, :phone, :created_by, :created_at, :name_norm, :email_norm, :phone_norm)`, row)
	if err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	return r.one(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
}

func (r *ClientRepository) ListByOrgID(ctx context.Context, orgID string) ([]entities.Client, error) {
	return r.list(ctx, `SELECT `+clientColumns+` FROM clients WHERE org_id = ? ORDER BY created_at, id`, orgID)
}

func (r *ClientRepository) SearchByNamePrefix(ctx context.Context, orgID, namePrefix string, limit int) ([]entities.Client, error) {
	return r.list(ctx,
		`SELECT `+clientColumns+` FROM clients
		 WHERE org_id = ? AND name_norm LIKE ? ESCAPE '\'
		 ORDER BY name_norm, created_at, id
		 LIMIT ?`,
		orgID, likePrefix(namePrefix), limit,
	)
}

func (r *ClientRepository) FindByEmail(ctx context.Context, orgID, emailKey string) (entities.Client, error) {
	if emailKey == "" {
		return entities.Client{}, nil
	}
	return r.first(ctx, `org_id = ? AND email_norm = ?`, orgID, emailKey)
}

func (r *ClientRepository) FindByNameAndPhone(ctx context.Context, orgID, nameKey, phoneKey string) (entities.Client, error) {
	if phoneKey == "" {
		return entities.Client{}, nil
	}
	return r.first(ctx, `org_id = ? AND name_norm = ? AND phone_norm = ?`, orgID, nameKey, phoneKey)
}

func (r *ClientRepository) FindByName(ctx context.Context, orgID, nameKey string) (entities.Client, error) {
	return r.first(ctx, `org_id = ? AND name_norm = ?`, orgID, nameKey)
}

// first returns the oldest client matching where.
func (r *ClientRepository) first(ctx context.Context, where string, args ...any) (entities.Client, error) {
	return r.one(ctx, `SELECT `+clientColumns+` FROM clients WHERE `+where+` ORDER BY created_at, id LIMIT 1`, args...)
}

func (r *ClientRepository) one(ctx context.Context, query string, args ...any) (entities.Client, error) {
	var row clientRow
	found, err := r.s.get(ctx, &row, query, args...)
	if err != nil || !found {
		return entities.Client{}, err
	}
	return row.entity(), nil
}

func (r *ClientRepository) list(ctx context.Context, query string, args ...any) ([]entities.Client, error) {
	var rows []clientRow
	if err := r.s.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return convert(rows, func(row clientRow) (entities.Client, error) {
		return row.entity(), nil
	})
}

func (row clientRow) entity() entities.Client {
	return entities.Client{
		ID:        row.ID,
		OrgID:     row.OrgID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		CreatedBy: row.CreatedBy,
		CreatedAt: parseTime(row.CreatedAt),
	}
}
