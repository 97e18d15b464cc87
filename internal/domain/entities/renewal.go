package entities

import "time"

type RenewalStatus string

const (
	RenewalStatusPending RenewalStatus = "pending"
	RenewalStatusPaid    RenewalStatus = "pago"
)

// Renewal is a reseller's request to extend its plan by one month, backed by
// a PIX charge. Only an administrator approval moves it out of pending, and
// that approval also advances the associate's due date.
type Renewal struct {
	ID          string        `json:"id"`
	AssociateID string        `json:"associado_id"`
	ChargeID    string        `json:"id_transacao"`
	Amount      float64       `json:"valor"`
	Status      RenewalStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	PaidAt      *time.Time    `json:"paid_at,omitempty"`
}

func (r Renewal) IsPending() bool {
	return r.Status == RenewalStatusPending
}
