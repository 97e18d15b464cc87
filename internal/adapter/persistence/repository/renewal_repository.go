package repository

import (
	"context"
	"fmt"
	"time"

	"painel_master/internal/domain/entities"
	"painel_master/internal/infrastructure/rowstore"
	"painel_master/internal/usecase/interfaces"
)

type renewalItem struct {
	ID          string  `mapstructure:"id,omitempty"`
	AssociateID string  `mapstructure:"associado_id"`
	ChargeID    string  `mapstructure:"id_transacao"`
	Amount      float64 `mapstructure:"valor"`
	Status      string  `mapstructure:"status"`
	CreatedAt   string  `mapstructure:"created_at,omitempty"`
	PaidAt      string  `mapstructure:"paid_at,omitempty"`
}

type RenewalRepository struct {
	store rowstore.RowStore
	table string
}

var _ interfaces.IRenewalRepository = (*RenewalRepository)(nil)

func NewRenewalRepository(store rowstore.RowStore, table string) *RenewalRepository {
	return &RenewalRepository{store: store, table: table}
}

func (r *RenewalRepository) ListPending(ctx context.Context) ([]entities.Renewal, error) {
	rows, err := r.store.Select(ctx, r.table, rowstore.Query{
		Filters: []rowstore.Filter{rowstore.Eq("status", string(entities.RenewalStatusPending))},
		OrderBy: "created_at",
		Desc:    true,
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Renewal, 0, len(rows))
	for _, row := range rows {
		rn, err := decodeRenewal(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rn)
	}
	return out, nil
}

func (r *RenewalRepository) GetByID(ctx context.Context, id string) (entities.Renewal, error) {
	rows, err := r.store.Select(ctx, r.table, rowstore.Query{
		Filters: []rowstore.Filter{rowstore.Eq("id", id)},
		Limit:   1,
	})
	if err != nil {
		return entities.Renewal{}, err
	}
	if len(rows) == 0 {
		return entities.Renewal{}, nil
	}
	return decodeRenewal(rows[0])
}

func (r *RenewalRepository) Create(ctx context.Context, rn entities.Renewal) (entities.Renewal, error) {
	if rn.Status == "" {
		rn.Status = entities.RenewalStatusPending
	}
	row, err := encodeItem(renewalItem{
		AssociateID: rn.AssociateID,
		ChargeID:    rn.ChargeID,
		Amount:      rn.Amount,
		Status:      string(rn.Status),
		CreatedAt:   formatTimestamp(rn.CreatedAt),
	})
	if err != nil {
		return entities.Renewal{}, err
	}
	created, err := r.store.Insert(ctx, r.table, row)
	if err != nil {
		return entities.Renewal{}, err
	}
	return decodeRenewal(created)
}

// MarkPaid flips the row only while it is still pending, so two concurrent
// approvals cannot both succeed.
func (r *RenewalRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) (entities.Renewal, bool, error) {
	rows, err := r.store.Update(ctx, r.table,
		[]rowstore.Filter{
			rowstore.Eq("id", id),
			rowstore.Eq("status", string(entities.RenewalStatusPending)),
		},
		rowstore.Row{"status": string(entities.RenewalStatusPaid), "paid_at": paidAt},
	)
	if err != nil {
		return entities.Renewal{}, false, err
	}
	if len(rows) == 0 {
		return entities.Renewal{}, false, nil
	}
	rn, err := decodeRenewal(rows[0])
	if err != nil {
		return entities.Renewal{}, false, err
	}
	return rn, true, nil
}

func (r *RenewalRepository) RevertToPending(ctx context.Context, id string) error {
	rows, err := r.store.Update(ctx, r.table,
		[]rowstore.Filter{rowstore.Eq("id", id)},
		rowstore.Row{"status": string(entities.RenewalStatusPending), "paid_at": nil},
	)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("renewal %s not found", id)
	}
	return nil
}

func decodeRenewal(row rowstore.Row) (entities.Renewal, error) {
	var it renewalItem
	if err := decodeRow(row, &it); err != nil {
		return entities.Renewal{}, err
	}
	rn := entities.Renewal{
		ID:          it.ID,
		AssociateID: it.AssociateID,
		ChargeID:    it.ChargeID,
		Amount:      it.Amount,
		Status:      entities.RenewalStatus(it.Status),
		CreatedAt:   parseTimestamp(it.CreatedAt),
	}
	if t := parseTimestamp(it.PaidAt); !t.IsZero() {
		rn.PaidAt = &t
	}
	return rn, nil
}
