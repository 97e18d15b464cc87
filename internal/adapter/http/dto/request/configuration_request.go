package request

import (
	"strings"

	"painel_master/internal/usecase"
)

type IntegrationRequest struct {
	APIKey              string `json:"api_key"`
	NotificationWebhook string `json:"webhook_notificacao"`
}

func (r IntegrationRequest) ToInput() usecase.IntegrationSettings {
	return usecase.IntegrationSettings{
		APIKey:              strings.TrimSpace(r.APIKey),
		NotificationWebhook: strings.TrimSpace(r.NotificationWebhook),
	}
}

type PayoutRequest struct {
	PixKeyType  string `json:"pix_tipo_chave"`
	PixKey      string `json:"pix_chave"`
	Beneficiary string `json:"pix_beneficiario"`
	Wallet      string `json:"carteira_liquid"`
}

func (r PayoutRequest) ToInput() usecase.PayoutSettings {
	return usecase.PayoutSettings{
		PixKeyType:  strings.TrimSpace(r.PixKeyType),
		PixKey:      strings.TrimSpace(r.PixKey),
		Beneficiary: strings.TrimSpace(r.Beneficiary),
		Wallet:      strings.TrimSpace(r.Wallet),
	}
}

type ResellerAPIKeyRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}
