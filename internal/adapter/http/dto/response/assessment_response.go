package response

import (
	"time"

	"detailshop/internal/domain/entities"
)

type AssessmentResponse struct {
	ID           string           `json:"id"`
	OrgID        string           `json:"org_id"`
	ClientID     string           `json:"client_id"`
	ClientName   string           `json:"client_name"`
	CreatedBy    string           `json:"created_by"`
	CarMake      string           `json:"car_make"`
	CarModel     string           `json:"car_model"`
	CarYear      int              `json:"car_year"`
	CarColor     string           `json:"car_color,omitempty"`
	ServiceIDs   []string         `json:"service_ids"`
	ModifierIDs  []string         `json:"modifier_ids"`
	Notes        string           `json:"notes,omitempty"`
	Status       string           `json:"status"`
	ScheduledFor *time.Time       `json:"scheduled_for,omitempty"`
	Estimate     EstimateResponse `json:"estimate"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func FromAssessment(a entities.Assessment) AssessmentResponse {
	return AssessmentResponse{
		ID:           a.ID,
		OrgID:        a.OrgID,
		ClientID:     a.ClientID,
		ClientName:   a.ClientName,
		CreatedBy:    a.CreatedBy,
		CarMake:      a.CarMake,
		CarModel:     a.CarModel,
		CarYear:      a.CarYear,
		CarColor:     a.CarColor,
		ServiceIDs:   nonNil(a.ServiceIDs),
		ModifierIDs:  nonNil(a.ModifierIDs),
		Notes:        a.Notes,
		Status:       string(a.Status),
		ScheduledFor: a.ScheduledFor,
		Estimate:     FromEstimate(a.Estimate),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func FromAssessments(list []entities.Assessment) []AssessmentResponse {
	out := make([]AssessmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAssessment(a))
	}
	return out
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
