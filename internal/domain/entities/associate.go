package entities

import "time"

// Associate is a reseller account ("associado").
//
// Storage model (row store, table master_associados):
//   - PK: id
//   - usuario is unique and lower-case without whitespace
//   - data_vencimento is a civil date (YYYY-MM-DD)
//
// Price is a snapshot of the plan price at create/edit time; later plan price
// changes do not touch existing associates.
type Associate struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	Username    string    `json:"usuario"`
	PlanID      string    `json:"plano_id"`
	DueDate     time.Time `json:"data_vencimento"`
	Price       float64   `json:"valor"`
	Password    string    `json:"-"`
	FirstAccess bool      `json:"primeiro_acesso"`
	APIKey      string    `json:"api_key,omitempty"`

	WebhookGeneratePix   string `json:"webhook_gerar_pix,omitempty"`
	WebhookCheckPayment  string `json:"webhook_verificar_pagamento,omitempty"`
	WebhookCheckTransfer string `json:"webhook_verificar_transacao,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Identity projects a reseller session out of the account row.
func (a Associate) Identity() Identity {
	return Identity{
		ID:          a.ID,
		Username:    a.Username,
		Name:        a.Name,
		Role:        RoleReseller,
		PlanID:      a.PlanID,
		DueDate:     FormatCivilDate(a.DueDate),
		FirstAccess: a.FirstAccess,
	}
}
