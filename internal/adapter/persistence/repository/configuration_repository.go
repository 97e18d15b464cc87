package repository

import (
	"context"
	"fmt"

	"painel_master/internal/domain/entities"
	"painel_master/internal/infrastructure/rowstore"
	"painel_master/internal/usecase/interfaces"
)

type configurationItem struct {
	Key   string `mapstructure:"chave"`
	Value string `mapstructure:"valor"`
}

// ConfigurationRepository reads the chave/valor settings table.
type ConfigurationRepository struct {
	store rowstore.RowStore
	table string
}

var _ interfaces.IConfigurationRepository = (*ConfigurationRepository)(nil)

func NewConfigurationRepository(store rowstore.RowStore, table string) *ConfigurationRepository {
	return &ConfigurationRepository{store: store, table: table}
}

func (r *ConfigurationRepository) GetAll(ctx context.Context) (entities.Configuration, error) {
	rows, err := r.store.Select(ctx, r.table, rowstore.Query{})
	if err != nil {
		return nil, err
	}
	cfg := make(entities.Configuration, len(rows))
	for _, row := range rows {
		var it configurationItem
		if err := decodeRow(row, &it); err != nil {
			return nil, err
		}
		if it.Key != "" {
			cfg[it.Key] = it.Value
		}
	}
	return cfg, nil
}

// Set updates the key in place and inserts it when absent.
func (r *ConfigurationRepository) Set(ctx context.Context, key, value string) error {
	rows, err := r.store.Update(ctx, r.table, []rowstore.Filter{rowstore.Eq("chave", key)}, rowstore.Row{"valor": value})
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		return nil
	}
	row, err := encodeItem(configurationItem{Key: key, Value: value})
	if err != nil {
		return err
	}
	if _, err := r.store.Insert(ctx, r.table, row); err != nil {
		return fmt.Errorf("insert setting %s: %w", key, err)
	}
	return nil
}
