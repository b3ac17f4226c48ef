package interfaces

import (
	"context"
	"detailshop/internal/domain/entities"
)

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_interface_mock.go -package=mock_interfaces

// IAssessmentPaymentRepository persists payments made against assessments.
type IAssessmentPaymentRepository interface {
	Create(ctx context.Context, p entities.AssessmentPayment) (entities.AssessmentPayment, error)
	GetByID(ctx context.Context, id string) (entities.AssessmentPayment, error)
	ListByAssessmentID(ctx context.Context, assessmentID string) ([]entities.AssessmentPayment, error)
}
