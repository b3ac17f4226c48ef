package response

import (
	"time"

	"detailshop/internal/domain/entities"
	"detailshop/internal/usecase"
)

type OrganizationResponse struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"external_id,omitempty"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	LogoURL    string    `json:"logo_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromOrganization(o entities.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:         o.ID,
		ExternalID: o.ExternalID,
		Name:       o.Name,
		Slug:       o.Slug,
		LogoURL:    o.LogoURL,
		CreatedAt:  o.CreatedAt,
	}
}

// BookingCatalogResponse is the public booking page payload. Internal identifiers
// of the organization other than its id are left out.
type BookingCatalogResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Services     []ServiceResponse    `json:"services"`
	Modifiers    []ModifierResponse   `json:"modifiers"`
}

func FromBookingCatalog(c usecase.BookingCatalog) BookingCatalogResponse {
	org := FromOrganization(c.Organization)
	org.ExternalID = ""
	return BookingCatalogResponse{
		Organization: org,
		Services:     FromServices(c.Services),
		Modifiers:    FromModifiers(c.Modifiers),
	}
}
