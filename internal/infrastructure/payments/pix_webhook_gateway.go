package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"painel_master/internal/config"
	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase/interfaces"
)

var (
	ErrProviderFailure      = errors.New("payment provider request failed")
	ErrWebhookNotConfigured = errors.New("pix webhook url not configured")
)

const maxProviderBody = 1 << 20

// PixWebhookGateway talks to the three PIX automation webhooks.
type PixWebhookGateway struct {
	client      *http.Client
	generateURL string
	paidURL     string
	verifyURL   string
}

var _ interfaces.IPaymentGateway = (*PixWebhookGateway)(nil)

func NewPixWebhookGateway(client *http.Client, cfg config.Payments) *PixWebhookGateway {
	return &PixWebhookGateway{
		client:      client,
		generateURL: cfg.GenerateURL,
		paidURL:     cfg.PaidURL,
		verifyURL:   cfg.VerifyURL,
	}
}

func (g *PixWebhookGateway) GenerateCharge(ctx context.Context, clientName string, amount float64, apiKey string) (entities.PixCharge, error) {
	log.Printf("[payment][webhook] generate start client=%s amount=%.2f", clientName, amount)
	doc, err := g.post(ctx, g.generateURL, map[string]any{
		"nome":    clientName,
		"valor":   amount,
		"api_key": apiKey,
	})
	if err != nil {
		log.Printf("[payment][webhook] generate failed err=%v", err)
		return entities.PixCharge{}, err
	}
	charge := chargeFromDocument(unwrapEnvelope(doc))
	log.Printf("[payment][webhook] generate success pix_id=%s transaction_id=%s", charge.ChargeID, charge.ExternalTxID)
	return charge, nil
}

func (g *PixWebhookGateway) ListPaidTransactions(ctx context.Context, limit int, apiKey string) ([]entities.PaidTransaction, error) {
	doc, err := g.post(ctx, g.paidURL, map[string]any{
		"quantidade": limit,
		"api_key":    apiKey,
	})
	if err != nil {
		log.Printf("[payment][webhook] paid list failed err=%v", err)
		return nil, err
	}
	items := paidTransactionItems(doc)
	out := make([]entities.PaidTransaction, 0, len(items))
	for _, it := range items {
		out = append(out, transactionFromDocument(it))
	}
	log.Printf("[payment][webhook] paid list success count=%d", len(out))
	return out, nil
}

func (g *PixWebhookGateway) VerifyTransaction(ctx context.Context, txID, apiKey string) (entities.TransactionCheck, error) {
	doc, err := g.post(ctx, g.verifyURL, map[string]any{
		"id_transacao": txID,
		"api_key":      apiKey,
	})
	if err != nil {
		log.Printf("[payment][webhook] verify failed id=%s err=%v", txID, err)
		return entities.TransactionCheck{}, err
	}
	check := checkFromDocument(unwrapCheck(doc))
	log.Printf("[payment][webhook] verify success id=%s status=%s", txID, check.Status)
	return check, nil
}

func (g *PixWebhookGateway) post(ctx context.Context, url string, payload any) (any, error) {
	if url == "" {
		return nil, ErrWebhookNotConfigured
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxProviderBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrProviderFailure, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrProviderFailure, resp.StatusCode)
	}
	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrProviderFailure, err)
	}
	return doc, nil
}
