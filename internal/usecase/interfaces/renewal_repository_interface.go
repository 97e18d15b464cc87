package interfaces

//go:generate mockgen -source=renewal_repository_interface.go -destination=mocks/renewal_repository_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"painel_master/internal/domain/entities"
)

// IRenewalRepository persists renewal requests.
//
// MarkPaid only flips a renewal that is still pending; ok is false when the
// row is missing or was already settled.
type IRenewalRepository interface {
	ListPending(ctx context.Context) ([]entities.Renewal, error)
	GetByID(ctx context.Context, id string) (entities.Renewal, error)
	Create(ctx context.Context, r entities.Renewal) (entities.Renewal, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (renewal entities.Renewal, ok bool, err error)
	RevertToPending(ctx context.Context, id string) error
}
