package interfaces

import (
	"context"
	"detailshop/internal/domain/entities"
	"time"
)

//go:generate mockgen -source=assessment_repository_interface.go -destination=mocks/assessment_repository_interface_mock.go -package=mock_interfaces

// IAssessmentRepository abstracts persistence for assessments.
//
// Create is a single-record write; assessment creation relies on it being the only
// write of the operation. UpdateStatus returns a zero Assessment when id is unknown,
// Delete reports whether a record was removed. Lists are newest first.
type IAssessmentRepository interface {
	Create(ctx context.Context, a entities.Assessment) (entities.Assessment, error)
	GetByID(ctx context.Context, id string) (entities.Assessment, error)
	ListByOrgID(ctx context.Context, orgID string) ([]entities.Assessment, error)
	ListScheduledInRange(ctx context.Context, orgID string, start, end time.Time) ([]entities.Assessment, error)
	ListAll(ctx context.Context) ([]entities.Assessment, error)
	UpdateStatus(ctx context.Context, id string, status entities.AssessmentStatus) (entities.Assessment, error)
	Delete(ctx context.Context, id string) (bool, error)
}
