package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ServiceType string

const (
	ServiceTypeBase  ServiceType = "base"
	ServiceTypeAddOn ServiceType = "add_on"
)

func (t ServiceType) IsValid() bool {
	return t == ServiceTypeBase || t == ServiceTypeAddOn
}

// Service is a billable offering of an organization (e.g. "Ceramic Coating").
//
// UnitPrice.Valid is false when the stored amount could not be parsed; such a
// service never contributes to an estimate.
type Service struct {
	ID          string              `json:"id"`
	OrgID       string              `json:"org_id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	UnitPrice   decimal.NullDecimal `json:"unit_price"`
	Type        ServiceType         `json:"type"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
