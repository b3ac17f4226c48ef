package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"detailshop/internal/domain/entities"
	"detailshop/internal/usecase/interfaces"
)

// assessmentRow stores id lists and the estimate snapshot as JSON text.
type assessmentRow struct {
	ID           string         `db:"id"`
	OrgID        string         `db:"org_id"`
	ClientID     string         `db:"client_id"`
	ClientName   string         `db:"client_name"`
	CreatedBy    string         `db:"created_by"`
	CarMake      string         `db:"car_make"`
	CarModel     string         `db:"car_model"`
	CarYear      int            `db:"car_year"`
	CarColor     string         `db:"car_color"`
	ServiceIDs   string         `db:"service_ids"`
	ModifierIDs  string         `db:"modifier_ids"`
	Notes        string         `db:"notes"`
	Status       string         `db:"status"`
	ScheduledFor sql.NullString `db:"scheduled_for"`
	Estimate     string         `db:"estimate"`
	CreatedAt    string         `db:"created_at"`
	UpdatedAt    string         `db:"updated_at"`
}

type AssessmentRepository struct {
	s *Store
}

var _ interfaces.IAssessmentRepository = (*AssessmentRepository)(nil)

const assessmentColumns = `id, org_id, client_id, client_name, created_by, car_make, car_model, car_year,
	car_color, service_ids, modifier_ids, notes, status, scheduled_for, estimate, created_at, updated_at`

func (r *AssessmentRepository) Create(ctx context.Context, a entities.Assessment) (entities.Assessment, error) {
	row, err := toAssessmentRow(a)
	if err != nil {
		return entities.Assessment{}, err
	}
	err = r.s.insert(ctx,
		`INSERT INTO assessments (`+assessmentColumns+`)
		 VALUES (:id, :org_id, :client_id, :client_name, :created_by, :car_make, :car_model, :car_year,
		 :car_color, :service_ids, :modifier_ids, :notes, :status, :scheduled_for, :estimate, :created_at, :updated_at)`,
		row)
	if err != nil {
		return entities.Assessment{}, err
	}
	return a, nil
}

func (r *AssessmentRepository) GetByID(ctx context.Context, id string) (entities.Assessment, error) {
	var row assessmentRow
	found, err := r.s.get(ctx, &row, `SELECT `+assessmentColumns+` FROM assessments WHERE id = ?`, id)
	if err != nil || !found {
		return entities.Assessment{}, err
	}
	return row.entity()
}

func (r *AssessmentRepository) ListByOrgID(ctx context.Context, orgID string) ([]entities.Assessment, error) {
	return r.list(ctx, `WHERE org_id = ? ORDER BY created_at DESC, id DESC`, orgID)
}

// ListScheduledInRange returns assessments scheduled within [start, end], soonest first.
func (r *AssessmentRepository) ListScheduledInRange(ctx context.Context, orgID string, start, end time.Time) ([]entities.Assessment, error) {
	return r.list(ctx,
		`WHERE org_id = ? AND scheduled_for IS NOT NULL AND scheduled_for >= ? AND scheduled_for <= ?
		 ORDER BY scheduled_for, id`,
		orgID, formatTime(start), formatTime(end))
}

func (r *AssessmentRepository) ListAll(ctx context.Context) ([]entities.Assessment, error) {
	return r.list(ctx, `ORDER BY created_at DESC, id DESC`)
}

func (r *AssessmentRepository) UpdateStatus(ctx context.Context, id string, status entities.AssessmentStatus) (entities.Assessment, error) {
	res, err := r.s.exec(ctx,
		`UPDATE assessments SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), formatTime(time.Now()), id)
	if err != nil {
		return entities.Assessment{}, err
	}
	if ok, err := affected(res); err != nil || !ok {
		return entities.Assessment{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *AssessmentRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.s.exec(ctx, `DELETE FROM assessments WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *AssessmentRepository) list(ctx context.Context, tail string, args ...any) ([]entities.Assessment, error) {
	var rows []assessmentRow
	if err := r.s.selectRows(ctx, &rows, `SELECT `+assessmentColumns+` FROM assessments `+tail, args...); err != nil {
		return nil, err
	}
	return convert(rows, assessmentRow.entity)
}

func toAssessmentRow(a entities.Assessment) (assessmentRow, error) {
	serviceIDs, err := json.Marshal(nonNil(a.ServiceIDs))
	if err != nil {
		return assessmentRow{}, err
	}
	modifierIDs, err := json.Marshal(nonNil(a.ModifierIDs))
	if err != nil {
		return assessmentRow{}, err
	}
	estimate, err := json.Marshal(a.Estimate)
	if err != nil {
		return assessmentRow{}, err
	}

	row := assessmentRow{
		ID:          a.ID,
		OrgID:       a.OrgID,
		ClientID:    a.ClientID,
		ClientName:  a.ClientName,
		CreatedBy:   a.CreatedBy,
		CarMake:     a.CarMake,
		CarModel:    a.CarModel,
		CarYear:     a.CarYear,
		CarColor:    a.CarColor,
		ServiceIDs:  string(serviceIDs),
		ModifierIDs: string(modifierIDs),
		Notes:       a.Notes,
		Status:      string(a.Status),
		Estimate:    string(estimate),
		CreatedAt:   formatTime(a.CreatedAt),
		UpdatedAt:   formatTime(a.UpdatedAt),
	}
	if a.ScheduledFor != nil {
		row.ScheduledFor = sql.NullString{String: formatTime(*a.ScheduledFor), Valid: true}
	}
	return row, nil
}

func (row assessmentRow) entity() (entities.Assessment, error) {
	a := entities.Assessment{
		ID:         row.ID,
		OrgID:      row.OrgID,
		ClientID:   row.ClientID,
		ClientName: row.ClientName,
		CreatedBy:  row.CreatedBy,
		CarMake:    row.CarMake,
		CarModel:   row.CarModel,
		CarYear:    row.CarYear,
		CarColor:   row.CarColor,
		Notes:      row.Notes,
		Status:     entities.AssessmentStatus(row.Status),
		CreatedAt:  parseTime(row.CreatedAt),
		UpdatedAt:  parseTime(row.UpdatedAt),
	}
	if err := json.Unmarshal([]byte(row.ServiceIDs), &a.ServiceIDs); err != nil {
		return entities.Assessment{}, fmt.Errorf("assessment %s: service_ids: %w", row.ID, err)
	}
	if err := json.Unmarshal([]byte(row.ModifierIDs), &a.ModifierIDs); err != nil {
		return entities.Assessment{}, fmt.Errorf("assessment %s: modifier_ids: %w", row.ID, err)
	}
	if err := json.Unmarshal([]byte(row.Estimate), &a.Estimate); err != nil {
		return entities.Assessment{}, fmt.Errorf("assessment %s: estimate: %w", row.ID, err)
	}
	a.ServiceIDs = nonNil(a.ServiceIDs)
	a.ModifierIDs = nonNil(a.ModifierIDs)
	if a.Estimate.LineItems == nil {
		a.Estimate.LineItems = []entities.LineItem{}
	}
	if row.ScheduledFor.Valid {
		t := parseTime(row.ScheduledFor.String)
		a.ScheduledFor = &t
	}
	return a, nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
