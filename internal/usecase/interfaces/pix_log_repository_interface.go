package interfaces

//go:generate mockgen -source=pix_log_repository_interface.go -destination=mocks/pix_log_repository_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"painel_master/internal/domain/entities"
)

// IPixLogRepository covers both log collections: the administrator's general
// log and the per-reseller sales log.
type IPixLogRepository interface {
	ListAdminLogs(ctx context.Context, limit int) ([]entities.PixLog, error)
	CreateAdminLog(ctx context.Context, l entities.PixLog) (entities.PixLog, error)
	ListByAssociate(ctx context.Context, associateID string) ([]entities.PixLog, error)
	ListResellerLogs(ctx context.Context) ([]entities.PixLog, error)
	// ListPaidBetween returns paid reseller logs with start <= created_at <= end.
	ListPaidBetween(ctx context.Context, start, end time.Time) ([]entities.PixLog, error)
	CreateResellerLog(ctx context.Context, l entities.PixLog) (entities.PixLog, error)
}
