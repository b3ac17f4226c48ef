package entities

import "github.com/shopspring/decimal"

type LineItemType string

const (
	LineItemService  LineItemType = "service"
	LineItemModifier LineItemType = "modifier"
)

// LineItem is one priced entry of an estimate. Price is never negative.
type LineItem struct {
	Type  LineItemType    `json:"type"`
	RefID string          `json:"ref_id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Estimate is the itemized quote for a selection of services and modifiers.
//
// Invariants:
//   - Subtotal == Round2(sum(LineItems.Price))
//   - Discount <= Subtotal
//   - Total == Round2(max(0, Round2(Subtotal-Discount)) + Tax)
type Estimate struct {
	LineItems []LineItem      `json:"line_items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
}

// ZeroEstimate is the result for an empty selection.
func ZeroEstimate() Estimate {
	return Estimate{
		LineItems: []LineItem{},
		Subtotal:  decimal.Zero,
		Discount:  decimal.Zero,
		Tax:       decimal.Zero,
		Total:     decimal.Zero,
	}
}
