package request

import "detailshop/internal/usecase"

type ClientCreateRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r ClientCreateRequest) ToCommand(orgID string) usecase.CreateClientCommand {
	return usecase.CreateClientCommand{OrgID: orgID, Name: r.Name, Email: r.Email, Phone: r.Phone}
}
