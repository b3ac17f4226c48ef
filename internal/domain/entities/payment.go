package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// AssessmentPayment is a charge against an assessment's estimate total.
//
// ProviderPayloadRaw keeps the gateway response body as received for audit;
// ProviderPayload is its parsed form for querying.
type AssessmentPayment struct {
	ID           string          `json:"id"`
	AssessmentID string          `json:"assessment_id"`
	OrgID        string          `json:"org_id"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Status       PaymentStatus   `json:"status"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any  `json:"provider_payload,omitempty"`
}
