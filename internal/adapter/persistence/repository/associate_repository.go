package repository

import (
	"context"
	"time"

	"painel_master/internal/domain/entities"
	"painel_master/internal/infrastructure/rowstore"
	"painel_master/internal/usecase/interfaces"
)

type associateItem struct {
	ID                   string  `mapstructure:"id,omitempty"`
	Name                 string  `mapstructure:"nome"`
	Username             string  `mapstructure:"usuario"`
	PlanID               string  `mapstructure:"plano_id"`
	DueDate              string  `mapstructure:"data_vencimento"`
	Price                float64 `mapstructure:"valor"`
	Password             string  `mapstructure:"senha,omitempty"`
	FirstAccess          bool    `mapstructure:"primeiro_acesso"`
	APIKey               string  `mapstructure:"api_key,omitempty"`
	WebhookGeneratePix   string  `mapstructure:"webhook_gerar_pix,omitempty"`
	WebhookCheckPayment  string  `mapstructure:"webhook_verificar_pagamento,omitempty"`
	WebhookCheckTransfer string  `mapstructure:"webhook_verificar_transacao,omitempty"`
	CreatedAt            string  `mapstructure:"created_at,omitempty"`
}

// AssociateRepository persists resellers in the associates table.
type AssociateRepository struct {
	store rowstore.RowStore
	table string
}

var _ interfaces.IAssociateRepository = (*AssociateRepository)(nil)

func NewAssociateRepository(store rowstore.RowStore, table string) *AssociateRepository {
	return &AssociateRepository{store: store, table: table}
}

func (r *AssociateRepository) List(ctx context.Context) ([]entities.Associate, error) {
	rows, err := r.store.Select(ctx, r.table, rowstore.Query{OrderBy: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	return decodeAssociates(rows)
}

func (r *AssociateRepository) GetByID(ctx context.Context, id string) (entities.Associate, error) {
	return r.getOne(ctx, rowstore.Eq("id", id))
}

func (r *AssociateRepository) GetByUsername(ctx context.Context, username string) (entities.Associate, error) {
	return r.getOne(ctx, rowstore.Eq("usuario", username))
}

func (r *AssociateRepository) Create(ctx context.Context, a entities.Associate) (entities.Associate, error) {
	row, err := encodeItem(toAssociateItem(a))
	if err != nil {
		return entities.Associate{}, err
	}
	created, err := r.store.Insert(ctx, r.table, row)
	if err != nil {
		return entities.Associate{}, err
	}
	return decodeAssociate(created)
}

// Update rewrites the profile fields. Credentials and integration settings
// have their own methods.
func (r *AssociateRepository) Update(ctx context.Context, a entities.Associate) (entities.Associate, error) {
	return r.patch(ctx, a.ID, rowstore.Row{
		"nome":            a.Name,
		"usuario":         a.Username,
		"plano_id":        a.PlanID,
		"data_vencimento": entities.FormatCivilDate(a.DueDate),
		"valor":           a.Price,
	})
}

func (r *AssociateRepository) UpdateDueDate(ctx context.Context, id string, due time.Time) (entities.Associate, error) {
	return r.patch(ctx, id, rowstore.Row{"data_vencimento": entities.FormatCivilDate(due)})
}

func (r *AssociateRepository) UpdatePassword(ctx context.Context, id, password string, firstAccess bool) (entities.Associate, error) {
	return r.patch(ctx, id, rowstore.Row{"senha": password, "primeiro_acesso": firstAccess})
}

func (r *AssociateRepository) UpdateAPIKey(ctx context.Context, id, apiKey string) (entities.Associate, error) {
	return r.patch(ctx, id, rowstore.Row{"api_key": apiKey})
}

func (r *AssociateRepository) Delete(ctx context.Context, id string) (bool, error) {
	n, err := r.store.Delete(ctx, r.table, []rowstore.Filter{rowstore.Eq("id", id)})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *AssociateRepository) getOne(ctx context.Context, f rowstore.Filter) (entities.Associate, error) {
	rows, err := r.store.Select(ctx, r.table, rowstore.Query{Filters: []rowstore.Filter{f}, Limit: 1})
	if err != nil {
		return entities.Associate{}, err
	}
	if len(rows) == 0 {
		return entities.Associate{}, nil
	}
	return decodeAssociate(rows[0])
}

func (r *AssociateRepository) patch(ctx context.Context, id string, p rowstore.Row) (entities.Associate, error) {
	rows, err := r.store.Update(ctx, r.table, []rowstore.Filter{rowstore.Eq("id", id)}, p)
	if err != nil {
		return entities.Associate{}, err
	}
	if len(rows) == 0 {
		return entities.Associate{}, nil
	}
	return decodeAssociate(rows[0])
}

func toAssociateItem(a entities.Associate) associateItem {
	return associateItem{
		ID:                   a.ID,
		Name:                 a.Name,
		Username:             a.Username,
		PlanID:               a.PlanID,
		DueDate:              entities.FormatCivilDate(a.DueDate),
		Price:                a.Price,
		Password:             a.Password,
		FirstAccess:          a.FirstAccess,
		APIKey:               a.APIKey,
		WebhookGeneratePix:   a.WebhookGeneratePix,
		WebhookCheckPayment:  a.WebhookCheckPayment,
		WebhookCheckTransfer: a.WebhookCheckTransfer,
		CreatedAt:            formatTimestamp(a.CreatedAt),
	}
}

func decodeAssociate(row rowstore.Row) (entities.Associate, error) {
	var it associateItem
	if err := decodeRow(row, &it); err != nil {
		return entities.Associate{}, err
	}
	return entities.Associate{
		ID:                   it.ID,
		Name:                 it.Name,
		Username:             it.Username,
		PlanID:               it.PlanID,
		DueDate:              parseDate(it.DueDate),
		Price:                it.Price,
		Password:             it.Password,
		FirstAccess:          it.FirstAccess,
		APIKey:               it.APIKey,
		WebhookGeneratePix:   it.WebhookGeneratePix,
		WebhookCheckPayment:  it.WebhookCheckPayment,
		WebhookCheckTransfer: it.WebhookCheckTransfer,
		CreatedAt:            parseTimestamp(it.CreatedAt),
	}, nil
}

func decodeAssociates(rows []rowstore.Row) ([]entities.Associate, error) {
	out := make([]entities.Associate, 0, len(rows))
	for _, row := range rows {
		a, err := decodeAssociate(row)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
