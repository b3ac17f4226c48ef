package usecase

import (
	"context"
	"detailshop/internal/config"
	"detailshop/internal/domain/entities"
	"detailshop/internal/infrastructure/metrics"
	"detailshop/internal/usecase/interfaces"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentLookups = 8

// Reasons a selected item is left out of an estimate.
const (
	excludedNotFound     = "not_found"
	excludedCrossTenant  = "cross_tenant"
	excludedInvalidPrice = "invalid_price"
	excludedLookupError  = "lookup_error"
)

// IEstimateUseCase computes itemized quotes.
//
// Calculate never fails: unknown, foreign or corrupt items are left out, so the
// result is always displayable as a best-effort preview.
type IEstimateUseCase interface {
	Calculate(ctx context.Context, orgID string, serviceIDs, modifierIDs []string) entities.Estimate
}

type EstimateUseCase struct {
	services  interfaces.IServiceRepository
	modifiers interfaces.IModifierRepository
	pricing   config.Pricing
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(services interfaces.IServiceRepository, modifiers interfaces.IModifierRepository, pricing config.Pricing) *EstimateUseCase {
	return &EstimateUseCase{services: services, modifiers: modifiers, pricing: pricing}
}

func (u *EstimateUseCase) Calculate(ctx context.Context, orgID string, serviceIDs, modifierIDs []string) entities.Estimate {
	serviceIDs = uniqueIDs(serviceIDs)
	modifierIDs = uniqueIDs(modifierIDs)

	// Slots keep input order regardless of which lookup finishes first.
	serviceItems := make([]*entities.LineItem, len(serviceIDs))
	modifierItems := make([]*entities.LineItem, len(modifierIDs))

	var g errgroup.Group
	g.SetLimit(maxConcurrentLookups)
	for i, id := range serviceIDs {
		g.Go(func() error {
			serviceItems[i] = u.serviceLineItem(ctx, orgID, id)
			return nil
		})
	}
	for i, id := range modifierIDs {
		g.Go(func() error {
			modifierItems[i] = u.modifierLineItem(ctx, orgID, id)
			return nil
		})
	}
	_ = g.Wait()

	items := make([]entities.LineItem, 0, len(serviceItems)+len(modifierItems))
	for _, group := range [][]*entities.LineItem{serviceItems, modifierItems} {
		for _, it := range group {
			if it != nil {
				items = append(items, *it)
			}
		}
	}

	estimate := PriceLineItems(items, u.pricing)
	metrics.EstimatesCalculated.Inc()
	slog.DebugContext(ctx, "[estimate][usecase] calculated",
		"org_id", orgID,
		"line_items", len(estimate.LineItems),
		"subtotal", estimate.Subtotal.String(),
		"total", estimate.Total.String(),
	)
	return estimate
}

// PriceLineItems applies discount and tax to already-filtered line items.
//
// Every stage is rounded to cents before the next one uses it; rounding only the
// final total gives different pennies.
func PriceLineItems(items []entities.LineItem, pricing config.Pricing) entities.Estimate {
	if len(items) == 0 {
		return entities.ZeroEstimate()
	}

	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Price)
	}

	subtotal := entities.Round2(sum)
	discount := entities.Round2(subtotal.Mul(pricing.DiscountPercentage))
	taxable := decimal.Max(decimal.Zero, entities.Round2(subtotal.Sub(discount)))
	tax := entities.Round2(taxable.Mul(pricing.TaxRate))
	total := entities.Round2(taxable.Add(tax))

	return entities.Estimate{
		LineItems: items,
		Subtotal:  subtotal,
		Discount:  discount,
		Tax:       tax,
		Total:     total,
	}
}

func (u *EstimateUseCase) serviceLineItem(ctx context.Context, orgID, id string) *entities.LineItem {
	const kind = "service"
	s, err := u.services.GetByID(ctx, id)
	switch {
	case err != nil:
		excludeItem(ctx, kind, id, excludedLookupError, err)
		return nil
	case s.ID == "":
		excludeItem(ctx, kind, id, excludedNotFound, nil)
		return nil
	case s.OrgID != orgID:
		excludeItem(ctx, kind, id, excludedCrossTenant, nil)
		return nil
	case !entities.IsBillable(s.UnitPrice):
		excludeItem(ctx, kind, id, excludedInvalidPrice, nil)
		return nil
	}
	return &entities.LineItem{Type: entities.LineItemService, RefID: s.ID, Name: s.Name, Price: s.UnitPrice.Decimal}
}

func (u *EstimateUseCase) modifierLineItem(ctx context.Context, orgID, id string) *entities.LineItem {
	const kind = "modifier"
	m, err := u.modifiers.GetByID(ctx, id)
	switch {
	case err != nil:
		excludeItem(ctx, kind, id, excludedLookupError, err)
		return nil
	case m.ID == "":
		excludeItem(ctx, kind, id, excludedNotFound, nil)
		return nil
	case m.OrgID != orgID:
		excludeItem(ctx, kind, id, excludedCrossTenant, nil)
		return nil
	case !entities.IsBillable(m.UnitPrice):
		excludeItem(ctx, kind, id, excludedInvalidPrice, nil)
		return nil
	}
	return &entities.LineItem{Type: entities.LineItemModifier, RefID: m.ID, Name: m.Name, Price: m.UnitPrice.Decimal}
}

func excludeItem(ctx context.Context, kind, id, reason string, err error) {
	metrics.EstimateItemsExcluded.WithLabelValues(kind, reason).Inc()
	attrs := []any{"kind", kind, "id", id, "reason", reason}
	if err != nil {
		slog.WarnContext(ctx, "[estimate][usecase] item lookup failed", append(attrs, "err", err)...)
		return
	}
	if reason == excludedNotFound {
		slog.DebugContext(ctx, "[estimate][usecase] item excluded", attrs...)
		return
	}
	slog.WarnContext(ctx, "[estimate][usecase] item excluded", attrs...)
}

// uniqueIDs trims ids, drops blanks and repeats, keeping first-seen order.
func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
