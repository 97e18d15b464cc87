package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase/interfaces"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrInvalidPaymentID              = errors.New("mercado pago payment id must be numeric")
)

// paymentAPI is the subset of payment.Client the gateway uses.
type paymentAPI interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Get(ctx context.Context, id int) (*payment.Response, error)
	Search(ctx context.Context, request payment.SearchRequest) (*payment.SearchResponse, error)
}

// MercadoPagoGateway issues PIX charges through the Mercado Pago payments
// API. A non-empty caller API key is used as that call's access token.
type MercadoPagoGateway struct {
	client     paymentAPI
	payerEmail string
	newClient  func(accessToken string) (paymentAPI, error)
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, payerEmail string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}
	client, err := newPaymentClient(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")
	return &MercadoPagoGateway{client: client, payerEmail: payerEmail, newClient: newPaymentClient}, nil
}

func newPaymentClient(accessToken string) (paymentAPI, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}
	return payment.NewClient(cfg), nil
}

func (g *MercadoPagoGateway) clientFor(apiKey string) (paymentAPI, error) {
	if apiKey == "" || g.newClient == nil {
		return g.client, nil
	}
	return g.newClient(apiKey)
}

func (g *MercadoPagoGateway) GenerateCharge(ctx context.Context, clientName string, amount float64, apiKey string) (entities.PixCharge, error) {
	client, err := g.clientFor(apiKey)
	if err != nil {
		return entities.PixCharge{}, err
	}

	// Built as JSON so the request follows the API field names exactly.
	payload, err := json.Marshal(map[string]any{
		"transaction_amount": amount,
		"description":        "PIX " + clientName,
		"payment_method_id":  "pix",
		"payer": map[string]any{
			"email":      g.payerEmail,
			"first_name": clientName,
		},
	})
	if err != nil {
		return entities.PixCharge{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return entities.PixCharge{}, err
	}

	log.Printf("[payment][gateway] create start client=%s amount=%.2f", clientName, amount)
	resp, err := client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return entities.PixCharge{}, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	doc, err := toDocument(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return entities.PixCharge{}, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return chargeFromDocument(mercadoPagoCharge(doc)), nil
}

func (g *MercadoPagoGateway) ListPaidTransactions(ctx context.Context, limit int, apiKey string) ([]entities.PaidTransaction, error) {
	client, err := g.clientFor(apiKey)
	if err != nil {
		return nil, err
	}
	resp, err := client.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{"status": "approved", "sort": "date_created", "criteria": "desc"},
		Limit:   limit,
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk search failed err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	doc, err := toDocument(resp)
	if err != nil {
		return nil, err
	}
	results, _ := doc["results"].([]any)
	out := make([]entities.PaidTransaction, 0, len(results))
	for _, r := range results {
		if m, ok := r.(map[string]any); ok {
			out = append(out, transactionFromDocument(mercadoPagoTransaction(m)))
		}
	}
	log.Printf("[payment][gateway] search success count=%d", len(out))
	return out, nil
}

func (g *MercadoPagoGateway) VerifyTransaction(ctx context.Context, txID, apiKey string) (entities.TransactionCheck, error) {
	id, err := strconv.Atoi(strings.TrimSpace(txID))
	if err != nil {
		return entities.TransactionCheck{}, ErrInvalidPaymentID
	}
	client, err := g.clientFor(apiKey)
	if err != nil {
		return entities.TransactionCheck{}, err
	}
	resp, err := client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed id=%d err=%v", id, err)
		return entities.TransactionCheck{}, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	doc, err := toDocument(resp)
	if err != nil {
		return entities.TransactionCheck{}, err
	}
	return checkFromDocument(mercadoPagoTransaction(doc)), nil
}

// toDocument re-reads an SDK response as an untyped document so it can go
// through the same field lookups as the webhook responses.
func toDocument(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	doc, err := decodeDocument(b)
	if err != nil {
		return nil, err
	}
	m, _ := doc.(map[string]any)
	if m == nil {
		return map[string]any{}, nil
	}
	return m, nil
}

func nested(m map[string]any, keys ...string) map[string]any {
	for _, k := range keys {
		next, _ := m[k].(map[string]any)
		if next == nil {
			return map[string]any{}
		}
		m = next
	}
	return m
}

// mercadoPagoCharge maps a payment onto the webhook charge keys.
func mercadoPagoCharge(doc map[string]any) map[string]any {
	td := nested(doc, "point_of_interaction", "transaction_data")
	out := map[string]any{
		"id":                 doc["id"],
		"transaction_id":     doc["id"],
		"pix":                td["qr_code"],
		"qr_code_expires_at": doc["date_of_expiration"],
	}
	if b64 := stringify(td["qr_code_base64"]); b64 != "" {
		out["qr_code"] = "data:image/png;base64," + b64
	}
	return out
}

// mercadoPagoTransaction maps a payment onto the webhook transaction keys.
func mercadoPagoTransaction(doc map[string]any) map[string]any {
	return map[string]any{
		"id":                   doc["id"],
		"amount":               doc["transaction_amount"],
		"net_amount":           nested(doc, "transaction_details")["net_received_amount"],
		"status":               doc["status"],
		"created_at":           doc["date_created"],
		"updated_at":           doc["date_approved"],
		"depix_transaction_id": doc["external_reference"],
		"user":                 map[string]any{"name": nested(doc, "payer")["first_name"]},
	}
}
