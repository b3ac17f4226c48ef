package request

import "detailshop/internal/usecase"

type OrganizationCreateRequest struct {
	ExternalID string `json:"external_id"`
	Name       string `json:"name" binding:"required"`
	Slug       string `json:"slug" binding:"required"`
	LogoURL    string `json:"logo_url"`
}

func (r OrganizationCreateRequest) ToCommand() usecase.CreateOrganizationCommand {
	return usecase.CreateOrganizationCommand{
		ExternalID: r.ExternalID,
		Name:       r.Name,
		Slug:       r.Slug,
		LogoURL:    r.LogoURL,
	}
}
