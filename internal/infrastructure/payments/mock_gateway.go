package payments

import (
	"context"
	"log"
	"strconv"
	"time"

	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// MockGateway fabricates provider answers for PAYMENT_GATEWAY_MOCK runs:
// every charge is generated and every verification reports paid.
type MockGateway struct {
	now func() time.Time
}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	log.Printf("[payment][gateway] mock mode enabled")
	return &MockGateway{now: time.Now}
}

func (g *MockGateway) GenerateCharge(_ context.Context, clientName string, amount float64, _ string) (entities.PixCharge, error) {
	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	tx := uuid.NewString()
	log.Printf("[payment][gateway] mock generate pix_id=%s client=%s amount=%.2f", id, clientName, amount)
	return entities.PixCharge{
		QRImage:       "data:image/png;base64,iVBORw0KGgo=",
		ChargeID:      id,
		ExternalTxID:  tx,
		CopyPasteCode: "00020126580014br.gov.bcb.pix0136" + tx + "5204000053039865802BR",
		ExpiresAt:     now.Add(30 * time.Minute).Format(time.RFC3339),
	}, nil
}

func (g *MockGateway) ListPaidTransactions(_ context.Context, _ int, _ string) ([]entities.PaidTransaction, error) {
	log.Printf("[payment][gateway] mock paid list")
	return []entities.PaidTransaction{}, nil
}

func (g *MockGateway) VerifyTransaction(_ context.Context, txID, _ string) (entities.TransactionCheck, error) {
	log.Printf("[payment][gateway] mock verify id=%s status=paid", txID)
	return entities.TransactionCheck{ID: txID, Status: string(entities.PixLogStatusPaid), ClientName: "-"}, nil
}
