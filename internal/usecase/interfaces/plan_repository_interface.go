package interfaces

//go:generate mockgen -source=plan_repository_interface.go -destination=mocks/plan_repository_mock.go -package=mock_interfaces

import (
	"context"

	"painel_master/internal/domain/entities"
)

// IPlanRepository abstracts persistence for subscription plans. Plans are
// never removed: Deactivate hides them from ListActive only.
type IPlanRepository interface {
	ListActive(ctx context.Context) ([]entities.Plan, error)
	GetByID(ctx context.Context, id string) (entities.Plan, error)
	Create(ctx context.Context, p entities.Plan) (entities.Plan, error)
	Update(ctx context.Context, p entities.Plan) (entities.Plan, error)
	Deactivate(ctx context.Context, id string) (bool, error)
}
