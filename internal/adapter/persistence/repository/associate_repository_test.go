package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"painel_master/internal/domain/entities"
	"painel_master/internal/infrastructure/rowstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssociateRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := rowstore.NewMemoryStore()
	repo := NewAssociateRepository(store, "master_associados")

	created, err := repo.Create(ctx, entities.Associate{
		Name:        "Loja Centro",
		Username:    "lojacentro",
		PlanID:      "p-1",
		DueDate:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Price:       49.9,
		Password:    "Ab3dEf7h",
		FirstAccess: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByUsername(ctx, "lojacentro")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "2024-03-10", entities.FormatCivilDate(got.DueDate))
	assert.Equal(t, 49.9, got.Price)
	assert.Equal(t, "Ab3dEf7h", got.Password)
	assert.True(t, got.FirstAccess)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestAssociateRepository_DecodesBackendTypes(t *testing.T) {
	store := rowstore.NewMemoryStore()
	store.Seed("master_associados", rowstore.Row{
		"id":              json.Number("12"),
		"nome":            "Loja",
		"usuario":         "loja",
		"plano_id":        json.Number("3"),
		"data_vencimento": "2024-05-01",
		"valor":           json.Number("99.90"),
		"primeiro_acesso": false,
		"created_at":      "2024-01-02T10:00:00.123456+00:00",
		"api_key":         nil,
	})
	repo := NewAssociateRepository(store, "master_associados")

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	a := list[0]
	assert.Equal(t, "12", a.ID)
	assert.Equal(t, "3", a.PlanID)
	assert.Equal(t, 99.9, a.Price)
	assert.Empty(t, a.APIKey)
	assert.Equal(t, 2024, a.CreatedAt.Year())
}

func TestAssociateRepository_ListNewestFirst(t *testing.T) {
	store := rowstore.NewMemoryStore()
	store.Seed("master_associados",
		rowstore.Row{"id": "a", "usuario": "a", "created_at": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		rowstore.Row{"id": "b", "usuario": "b", "created_at": time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	)
	repo := NewAssociateRepository(store, "master_associados")

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
}

func TestAssociateRepository_Patches(t *testing.T) {
	ctx := context.Background()
	store := rowstore.NewMemoryStore()
	store.Seed("master_associados", rowstore.Row{
		"id": "a-1", "nome": "Loja", "usuario": "loja", "senha": "old",
		"primeiro_acesso": true, "data_vencimento": "2024-01-31",
	})
	repo := NewAssociateRepository(store, "master_associados")

	a, err := repo.UpdateDueDate(ctx, "a-1", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-02", entities.FormatCivilDate(a.DueDate))

	a, err = repo.UpdatePassword(ctx, "a-1", "new-secret", false)
	require.NoError(t, err)
	assert.Equal(t, "new-secret", a.Password)
	assert.False(t, a.FirstAccess)

	a, err = repo.UpdateAPIKey(ctx, "a-1", "key-123")
	require.NoError(t, err)
	assert.Equal(t, "key-123", a.APIKey)

	a.Name = "Loja Nova"
	a, err = repo.Update(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "Loja Nova", a.Name)
	assert.Equal(t, "new-secret", a.Password)

	none, err := repo.UpdateAPIKey(ctx, "missing", "k")
	require.NoError(t, err)
	assert.Empty(t, none.ID)

	ok, err := repo.Delete(ctx, "a-1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Delete(ctx, "a-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
