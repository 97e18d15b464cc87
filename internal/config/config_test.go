package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreDriverPostgREST, cfg.Store.Driver)
	assert.Equal(t, PaymentProviderWebhook, cfg.Payments.Provider)
	assert.Equal(t, "master_associados", cfg.Tables.Associates)
	assert.Equal(t, "solicitacoes_pagamento", cfg.Tables.BillPayments)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ClientTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", " Memory ")
	t.Setenv("PAYMENT_PROVIDER", "MercadoPago")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("TABLE_PLANS", "planos_v2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, PaymentProviderMercadoPago, cfg.Payments.Provider)
	assert.True(t, cfg.Payments.Mock)
	assert.Equal(t, "planos_v2", cfg.Tables.Plans)
}

func TestLocation_Fallback(t *testing.T) {
	cfg := &Config{Panel: Panel{Timezone: "Nowhere/Invalid"}}
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLocation_PanelTimezone(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	loc := cfg.Location()
	assert.Equal(t, "America/Sao_Paulo", loc.String())
	_, offset := time.Date(2024, 6, 1, 12, 0, 0, 0, loc).Zone()
	assert.Equal(t, -3*60*60, offset)
}
