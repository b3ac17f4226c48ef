package response

import (
	"detailshop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type LineItemResponse struct {
	Type  string  `json:"type"`
	RefID string  `json:"ref_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// EstimateResponse carries amounts as JSON numbers. Totals have at most two
// decimals; line items show the stored price as summed into the subtotal.
type EstimateResponse struct {
	LineItems []LineItemResponse `json:"line_items"`
	Subtotal  float64            `json:"subtotal"`
	Discount  float64            `json:"discount"`
	Tax       float64            `json:"tax"`
	Total     float64            `json:"total"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]LineItemResponse, 0, len(e.LineItems))
	for _, li := range e.LineItems {
		items = append(items, LineItemResponse{
			Type:  string(li.Type),
			RefID: li.RefID,
			Name:  li.Name,
			Price: li.Price.InexactFloat64(),
		})
	}
	return EstimateResponse{
		LineItems: items,
		Subtotal:  amount(e.Subtotal),
		Discount:  amount(e.Discount),
		Tax:       amount(e.Tax),
		Total:     amount(e.Total),
	}
}

func amount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// nullableAmount renders a stored price as is, or null when it could not be
// parsed.
func nullableAmount(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	v := d.Decimal.InexactFloat64()
	return &v
}
