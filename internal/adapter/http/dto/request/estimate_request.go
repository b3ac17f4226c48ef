package request

import "strings"

// EstimateRequest selects services and modifiers to price.
type EstimateRequest struct {
	ServiceIDs  []string `json:"service_ids"`
	ModifierIDs []string `json:"modifier_ids"`
}

// Selection returns the trimmed, non-blank ids. Order is kept.
func (r EstimateRequest) Selection() (serviceIDs, modifierIDs []string) {
	return trimIDs(r.ServiceIDs), trimIDs(r.ModifierIDs)
}

func trimIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if v := strings.TrimSpace(id); v != "" {
			out = append(out, v)
		}
	}
	return out
}
