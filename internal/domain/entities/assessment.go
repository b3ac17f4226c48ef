package entities

import (
	"strings"
	"time"
)

// AssessmentStatus is a plain field; transitions are not constrained.
type AssessmentStatus string

const (
	AssessmentStatusPending   AssessmentStatus = "pending"
	AssessmentStatusReviewed  AssessmentStatus = "reviewed"
	AssessmentStatusComplete  AssessmentStatus = "complete"
	AssessmentStatusCancelled AssessmentStatus = "cancelled"
)

func ParseAssessmentStatus(v string) (AssessmentStatus, bool) {
	s := AssessmentStatus(strings.ToLower(strings.TrimSpace(v)))
	switch s {
	case AssessmentStatusPending, AssessmentStatusReviewed, AssessmentStatusComplete, AssessmentStatusCancelled:
		return s, true
	}
	return "", false
}

// Assessment is a quote/job tying a client, a vehicle and selected services together.
//
// Estimate is the pricing snapshot taken at creation time; later catalog price
// changes do not alter it.
type Assessment struct {
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
	Status       AssessmentStatus `json:"status"`
	ScheduledFor *time.Time       `json:"scheduled_for,omitempty"`
	Estimate     Estimate         `json:"estimate"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
