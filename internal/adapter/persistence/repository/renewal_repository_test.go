package repository

import (
	"context"
	"testing"
	"time"

	"painel_master/internal/domain/entities"
	"painel_master/internal/infrastructure/rowstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenewalRepository_MarkPaidOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewRenewalRepository(rowstore.NewMemoryStore(), "renovacoes_pendentes")

	rn, err := repo.Create(ctx, entities.Renewal{AssociateID: "a-1", ChargeID: "pix-1", Amount: 49.9})
	require.NoError(t, err)
	assert.Equal(t, entities.RenewalStatusPending, rn.Status)

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	paidAt := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	paid, ok, err := repo.MarkPaid(ctx, rn.ID, paidAt)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entities.RenewalStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	assert.True(t, paid.PaidAt.Equal(paidAt))

	_, ok, err = repo.MarkPaid(ctx, rn.ID, paidAt)
	require.NoError(t, err)
	assert.False(t, ok)

	pending, err = repo.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRenewalRepository_RevertToPending(t *testing.T) {
	ctx := context.Background()
	repo := NewRenewalRepository(rowstore.NewMemoryStore(), "renovacoes_pendentes")

	rn, err := repo.Create(ctx, entities.Renewal{AssociateID: "a-1", ChargeID: "pix-1", Amount: 10})
	require.NoError(t, err)
	_, ok, err := repo.MarkPaid(ctx, rn.ID, time.Now())
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, repo.RevertToPending(ctx, rn.ID))
	got, err := repo.GetByID(ctx, rn.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPending())
	assert.Nil(t, got.PaidAt)

	assert.Error(t, repo.RevertToPending(ctx, "missing"))
}
