package payments

import (
	"fmt"
	"net/http"

	"painel_master/internal/config"
	"painel_master/internal/usecase/interfaces"
)

// NewGateway selects the PIX provider from configuration.
func NewGateway(cfg config.Payments, client *http.Client) (interfaces.IPaymentGateway, error) {
	if cfg.Mock {
		return NewMockGateway(), nil
	}
	switch cfg.Provider {
	case config.PaymentProviderWebhook, "":
		return NewPixWebhookGateway(client, cfg), nil
	case config.PaymentProviderMercadoPago:
		g, err := NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.MercadoPagoPayerEmail)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return nil, fmt.Errorf("unknown PAYMENT_PROVIDER %q", cfg.Provider)
}
