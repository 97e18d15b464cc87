package repository

import (
	"context"
	"time"

	"painel_master/internal/domain/entities"
	"painel_master/internal/infrastructure/rowstore"
	"painel_master/internal/usecase/interfaces"
)

type pixLogItem struct {
	ID            string  `mapstructure:"id,omitempty"`
	AssociateID   string  `mapstructure:"associado_id,omitempty"`
	ChargeID      string  `mapstructure:"id_transacao"`
	ClientName    string  `mapstructure:"cliente"`
	Amount        float64 `mapstructure:"valor"`
	TransactionID string  `mapstructure:"transaction_id"`
	Status        string  `mapstructure:"status"`
	CreatedBy     string  `mapstructure:"gerado_por,omitempty"`
	CreatorName   string  `mapstructure:"nome_gerador,omitempty"`
	CreatedAt     string  `mapstructure:"created_at,omitempty"`
}

// PixLogRepository reads and appends to both PIX log tables: the
// administrator's general log and the per-reseller sales log.
type PixLogRepository struct {
	store          rowstore.RowStore
	adminTable     string
	associateTable string
}

var _ interfaces.IPixLogRepository = (*PixLogRepository)(nil)

func NewPixLogRepository(store rowstore.RowStore, adminTable, associateTable string) *PixLogRepository {
	return &PixLogRepository{store: store, adminTable: adminTable, associateTable: associateTable}
}

func (r *PixLogRepository) ListAdminLogs(ctx context.Context, limit int) ([]entities.PixLog, error) {
	return r.list(ctx, r.adminTable, rowstore.Query{OrderBy: "created_at", Desc: true, Limit: limit})
}

func (r *PixLogRepository) CreateAdminLog(ctx context.Context, l entities.PixLog) (entities.PixLog, error) {
	l.AssociateID = ""
	return r.create(ctx, r.adminTable, l)
}

func (r *PixLogRepository) ListByAssociate(ctx context.Context, associateID string) ([]entities.PixLog, error) {
	return r.list(ctx, r.associateTable, rowstore.Query{
		Filters: []rowstore.Filter{rowstore.Eq("associado_id", associateID)},
		OrderBy: "created_at",
		Desc:    true,
	})
}

func (r *PixLogRepository) ListResellerLogs(ctx context.Context) ([]entities.PixLog, error) {
	return r.list(ctx, r.associateTable, rowstore.Query{OrderBy: "created_at", Desc: true})
}

func (r *PixLogRepository) ListPaidBetween(ctx context.Context, start, end time.Time) ([]entities.PixLog, error) {
	return r.list(ctx, r.associateTable, rowstore.Query{Filters: []rowstore.Filter{
		rowstore.Gte("created_at", start),
		rowstore.Lte("created_at", end),
		rowstore.Eq("status", string(entities.PixLogStatusPaid)),
	}})
}

func (r *PixLogRepository) CreateResellerLog(ctx context.Context, l entities.PixLog) (entities.PixLog, error) {
	l.CreatedBy, l.CreatorName = "", ""
	return r.create(ctx, r.associateTable, l)
}

func (r *PixLogRepository) list(ctx context.Context, table string, q rowstore.Query) ([]entities.PixLog, error) {
	rows, err := r.store.Select(ctx, table, q)
	if err != nil {
		return nil, err
	}
	out := make([]entities.PixLog, 0, len(rows))
	for _, row := range rows {
		l, err := decodePixLog(row)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *PixLogRepository) create(ctx context.Context, table string, l entities.PixLog) (entities.PixLog, error) {
	row, err := encodeItem(pixLogItem{
		AssociateID:   l.AssociateID,
		ChargeID:      l.ChargeID,
		ClientName:    l.ClientName,
		Amount:        l.Amount,
		TransactionID: l.TransactionID,
		Status:        string(l.Status),
		CreatedBy:     l.CreatedBy,
		CreatorName:   l.CreatorName,
		CreatedAt:     formatTimestamp(l.CreatedAt),
	})
	if err != nil {
		return entities.PixLog{}, err
	}
	created, err := r.store.Insert(ctx, table, row)
	if err != nil {
		return entities.PixLog{}, err
	}
	return decodePixLog(created)
}

func decodePixLog(row rowstore.Row) (entities.PixLog, error) {
	var it pixLogItem
	if err := decodeRow(row, &it); err != nil {
		return entities.PixLog{}, err
	}
	return entities.PixLog{
		ID:            it.ID,
		AssociateID:   it.AssociateID,
		ChargeID:      it.ChargeID,
		ClientName:    it.ClientName,
		Amount:        it.Amount,
		TransactionID: it.TransactionID,
		Status:        entities.PixLogStatus(it.Status),
		CreatedBy:     it.CreatedBy,
		CreatorName:   it.CreatorName,
		CreatedAt:     parseTimestamp(it.CreatedAt),
	}, nil
}
