package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modifier is a condition-based price adjustment (e.g. "Excessive Pet Hair").
type Modifier struct {
	ID          string              `json:"id"`
	OrgID       string              `json:"org_id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	UnitPrice   decimal.NullDecimal `json:"unit_price"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
