package response

import (
	"time"

	"detailshop/internal/domain/entities"
)

type ServiceResponse struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"org_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UnitPrice   *float64  `json:"unit_price"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		OrgID:       s.OrgID,
		Name:        s.Name,
		Description: s.Description,
		UnitPrice:   nullableAmount(s.UnitPrice),
		Type:        string(s.Type),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromServices(list []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromService(s))
	}
	return out
}

type ModifierResponse struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"org_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UnitPrice   *float64  `json:"unit_price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromModifier(m entities.Modifier) ModifierResponse {
	return ModifierResponse{
		ID:          m.ID,
		OrgID:       m.OrgID,
		Name:        m.Name,
		Description: m.Description,
		UnitPrice:   nullableAmount(m.UnitPrice),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModifiers(list []entities.Modifier) []ModifierResponse {
	out := make([]ModifierResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModifier(m))
	}
	return out
}
