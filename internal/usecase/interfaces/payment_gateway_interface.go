package interfaces

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_mock.go -package=mock_interfaces

import (
	"context"

	"painel_master/internal/domain/entities"
)

// IPaymentGateway abstracts the PIX provider (n8n webhooks or Mercado Pago).
//
// Every call carries the caller's provider API key: the administrator's
// global key or the reseller's own.
type IPaymentGateway interface {
	GenerateCharge(ctx context.Context, clientName string, amount float64, apiKey string) (entities.PixCharge, error)
	ListPaidTransactions(ctx context.Context, limit int, apiKey string) ([]entities.PaidTransaction, error)
	VerifyTransaction(ctx context.Context, txID, apiKey string) (entities.TransactionCheck, error)
}
