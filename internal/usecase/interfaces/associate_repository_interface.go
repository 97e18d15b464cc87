package interfaces

//go:generate mockgen -source=associate_repository_interface.go -destination=mocks/associate_repository_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"painel_master/internal/domain/entities"
)

// IAssociateRepository abstracts row-store persistence for reseller accounts.
//
// Lookups return the zero Associate and a nil error when no row matches;
// a non-nil error always means the backend could not be reached.
type IAssociateRepository interface {
	List(ctx context.Context) ([]entities.Associate, error)
	GetByID(ctx context.Context, id string) (entities.Associate, error)
	GetByUsername(ctx context.Context, username string) (entities.Associate, error)
	Create(ctx context.Context, a entities.Associate) (entities.Associate, error)
	Update(ctx context.Context, a entities.Associate) (entities.Associate, error)
	UpdateDueDate(ctx context.Context, id string, due time.Time) (entities.Associate, error)
	UpdatePassword(ctx context.Context, id, password string, firstAccess bool) (entities.Associate, error)
	UpdateAPIKey(ctx context.Context, id, apiKey string) (entities.Associate, error)
	Delete(ctx context.Context, id string) (bool, error)
}
