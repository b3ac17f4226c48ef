package response

import (
	"time"

	"detailshop/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID    string    `json:"payment_id"`
	AssessmentID string    `json:"assessment_id"`
	OrgID        string    `json:"org_id"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`

	MPPayloadRaw string         `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any `json:"mp_payload,omitempty"`
}

func FromPayment(p entities.AssessmentPayment) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.ID,
		AssessmentID: p.AssessmentID,
		OrgID:        p.OrgID,
		Amount:       amount(p.Amount),
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}

func FromPayments(list []entities.AssessmentPayment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}
