package entities

import "time"

// Organization is a tenant business.
//
// ExternalID is the identity provider's organization identifier. The core only ever
// sees ID; handlers translate whichever representation a request carries.
type Organization struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"external_id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	LogoURL    string    `json:"logo_url"`
	CreatedAt  time.Time `json:"created_at"`
}
