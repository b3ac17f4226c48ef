package sqlstore

import (
	"context"
	"encoding/json"

	"detailshop/internal/domain/entities"
	"detailshop/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

type paymentRow struct {
	ID                 string `db:"id"`
	AssessmentID       string `db:"assessment_id"`
	OrgID              string `db:"org_id"`
	Amount             string `db:"amount"`
	Date               string `db:"date"`
	Status             string `db:"status"`
	ProviderPayloadRaw string `db:"provider_payload_raw"`
}

type PaymentRepository struct {
	s *Store
}

var _ interfaces.IAssessmentPaymentRepository = (*PaymentRepository)(nil)

const paymentColumns = `id, assessment_id, org_id, amount, date, status, provider_payload_raw`

func (r *PaymentRepository) Create(ctx context.Context, p entities.AssessmentPayment) (entities.AssessmentPayment, error) {
	row := paymentRow{
		ID:                 p.ID,
		AssessmentID:       p.AssessmentID,
		OrgID:              p.OrgID,
		Amount:             p.Amount.String(),
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
	err := r.s.insert(ctx,
		`INSERT INTO assessment_payments (`+paymentColumns+`)
		 VALUES (:id, :assessment_id, :org_id, :amount, :date, :status, :provider_payload_raw)`, row)
	if err != nil {
		return entities.AssessmentPayment{}, err
	}
	return p, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (entities.AssessmentPayment, error) {
	var row paymentRow
	found, err := r.s.get(ctx, &row, `SELECT `+paymentColumns+` FROM assessment_payments WHERE id = ?`, id)
	if err != nil || !found {
		return entities.AssessmentPayment{}, err
	}
	return row.entity(), nil
}

// ListByAssessmentID returns an assessment's payments, newest first.
func (r *PaymentRepository) ListByAssessmentID(ctx context.Context, assessmentID string) ([]entities.AssessmentPayment, error) {
	var rows []paymentRow
	err := r.s.selectRows(ctx, &rows,
		`SELECT `+paymentColumns+` FROM assessment_payments WHERE assessment_id = ? ORDER BY date DESC, id DESC`,
		assessmentID)
	if err != nil {
		return nil, err
	}
	return convert(rows, func(row paymentRow) (entities.AssessmentPayment, error) {
		return row.entity(), nil
	})
}

func (row paymentRow) entity() entities.AssessmentPayment {
	p := entities.AssessmentPayment{
		ID:           row.ID,
		AssessmentID: row.AssessmentID,
		OrgID:        row.OrgID,
		Date:         parseTime(row.Date),
		Status:       entities.PaymentStatus(row.Status),
	}
	p.Amount, _ = decimal.NewFromString(row.Amount)
	if row.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = json.RawMessage(row.ProviderPayloadRaw)
		var parsed map[string]any
		if json.Unmarshal(p.ProviderPayloadRaw, &parsed) == nil {
			p.ProviderPayload = parsed
		}
	}
	return p
}
