package repository

import (
	"context"
	"testing"

	"painel_master/internal/infrastructure/rowstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationRepository_SetUpserts(t *testing.T) {
	ctx := context.Background()
	store := rowstore.NewMemoryStore()
	store.Seed("master_configuracoes", rowstore.Row{"chave": "admin_usuario", "valor": "admin"})
	repo := NewConfigurationRepository(store, "master_configuracoes")

	require.NoError(t, repo.Set(ctx, "admin_usuario", "root"))
	require.NoError(t, repo.Set(ctx, "api_key", "k-1"))

	cfg, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "root", cfg["admin_usuario"])
	assert.Equal(t, "k-1", cfg["api_key"])

	rows, err := store.Select(ctx, "master_configuracoes", rowstore.Query{})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
