package request

import (
	"detailshop/internal/domain/entities"
	"detailshop/internal/usecase"

	"github.com/shopspring/decimal"
)

// ServiceCreateRequest accepts unit_price as a JSON number or a decimal string.
type ServiceCreateRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	UnitPrice   decimal.NullDecimal `json:"unit_price"`
	Type        string              `json:"type"`
}

// HasPrice reports whether unit_price was present and not null.
func (r ServiceCreateRequest) HasPrice() bool { return r.UnitPrice.Valid }

func (r ServiceCreateRequest) ToCommand(orgID string) usecase.CreateServiceCommand {
	return usecase.CreateServiceCommand{
		OrgID:       orgID,
		Name:        r.Name,
		Description: r.Description,
		UnitPrice:   r.UnitPrice.Decimal,
		Type:        entities.ServiceType(r.Type),
	}
}

type ModifierCreateRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	UnitPrice   decimal.NullDecimal `json:"unit_price"`
}

func (r ModifierCreateRequest) HasPrice() bool { return r.UnitPrice.Valid }

func (r ModifierCreateRequest) ToCommand(orgID string) usecase.CreateModifierCommand {
	return usecase.CreateModifierCommand{
		OrgID:       orgID,
		Name:        r.Name,
		Description: r.Description,
		UnitPrice:   r.UnitPrice.Decimal,
	}
}
