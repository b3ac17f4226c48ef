package request

import (
	"time"

	"detailshop/internal/usecase"
)

// AssessmentCreateRequest is the dashboard and booking payload for a new assessment.
//
// ClientID selects an existing client explicitly; otherwise the client is resolved
// from ClientName, ClientEmail and ClientPhone.
type AssessmentCreateRequest struct {
	ClientID     string     `json:"client_id"`
	ClientName   string     `json:"client_name"`
	ClientEmail  string     `json:"client_email"`
	ClientPhone  string     `json:"client_phone"`
	CarMake      string     `json:"car_make"`
	CarModel     string     `json:"car_model"`
	CarYear      int        `json:"car_year"`
	CarColor     string     `json:"car_color"`
	ServiceIDs   []string   `json:"service_ids"`
	ModifierIDs  []string   `json:"modifier_ids"`
	Notes        string     `json:"notes"`
	ScheduledFor *time.Time `json:"scheduled_for"`
}

func (r AssessmentCreateRequest) ToCommand(orgID string) usecase.CreateAssessmentCommand {
	return usecase.CreateAssessmentCommand{
		OrgID: orgID,
		Client: usecase.ClientLookup{
			ClientID: r.ClientID,
			Name:     r.ClientName,
			Email:    r.ClientEmail,
			Phone:    r.ClientPhone,
		},
		CarMake:      r.CarMake,
		CarModel:     r.CarModel,
		CarYear:      r.CarYear,
		CarColor:     r.CarColor,
		ServiceIDs:   r.ServiceIDs,
		ModifierIDs:  r.ModifierIDs,
		Notes:        r.Notes,
		ScheduledFor: r.ScheduledFor,
	}
}

type AssessmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
