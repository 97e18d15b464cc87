package entities

import (
	"strings"
	"time"
)

// PixLogStatus is the provider vocabulary stored on log rows.
type PixLogStatus string

const (
	PixLogStatusPending PixLogStatus = "pending"
	PixLogStatusPaid    PixLogStatus = "paid"
	PixLogStatusExpired PixLogStatus = "expired"
)

// PixLog records a generated charge. AssociateID is empty for charges the
// administrator generated (logs_pix); reseller charges live in
// associado_logs_pix.
type PixLog struct {
	ID            string       `json:"id"`
	AssociateID   string       `json:"associado_id,omitempty"`
	ChargeID      string       `json:"id_transacao"`
	ClientName    string       `json:"cliente"`
	Amount        float64      `json:"valor"`
	TransactionID string       `json:"transaction_id"`
	Status        PixLogStatus `json:"status"`
	CreatedBy     string       `json:"gerado_por,omitempty"`
	CreatorName   string       `json:"nome_gerador,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

func (l PixLog) IsPaid() bool {
	return strings.EqualFold(string(l.Status), string(PixLogStatusPaid))
}

// PixCharge is a freshly generated PIX QR.
type PixCharge struct {
	QRImage       string `json:"qr_code"`
	ChargeID      string `json:"pix_id"`
	ExternalTxID  string `json:"transaction_id"`
	CopyPasteCode string `json:"copia_cola"`
	ExpiresAt     string `json:"expires_at,omitempty"`
}

// PaidTransaction is one row of the provider's paid-transactions feed.
type PaidTransaction struct {
	ID           string  `json:"id"`
	ClientName   string  `json:"cliente"`
	GrossAmount  float64 `json:"valor_bruto"`
	NetAmount    float64 `json:"valor_liquido"`
	Commission   float64 `json:"comissao"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"data_criacao"`
	PaidAt       string  `json:"data_pagamento"`
	ExternalTxID string  `json:"transaction_id"`
}

// Received is the net amount, or the gross when the provider omits it.
func (t PaidTransaction) Received() float64 {
	if t.NetAmount != 0 {
		return t.NetAmount
	}
	return t.GrossAmount
}

// TransactionCheck is the provider's answer for a single transaction.
type TransactionCheck struct {
	ID         string  `json:"id"`
	Status     string  `json:"status"`
	Amount     float64 `json:"valor"`
	ClientName string  `json:"cliente"`
}

type StatusCategory string

const (
	StatusPaid    StatusCategory = "PAID"
	StatusPending StatusCategory = "PENDING"
	StatusExpired StatusCategory = "EXPIRED"
	StatusUnknown StatusCategory = "UNKNOWN"
)

type NormalizedStatus struct {
	Category StatusCategory `json:"category"`
	Label    string         `json:"label"`
	Severity Severity       `json:"severity"`
}

// NormalizeStatus folds the provider's status strings into four categories.
// Unrecognized values pass through upper-cased.
func NormalizeStatus(raw string) NormalizedStatus {
	if raw == "" {
		return NormalizedStatus{Category: StatusUnknown, Label: "-", Severity: SeverityDefault}
	}
	switch strings.ToLower(raw) {
	case "paid", "approved", "confirmed":
		return NormalizedStatus{Category: StatusPaid, Label: "PAGO", Severity: SeveritySuccess}
	case "pending", "waiting":
		return NormalizedStatus{Category: StatusPending, Label: "PENDENTE", Severity: SeverityWarning}
	case "expired", "cancelled", "canceled":
		return NormalizedStatus{Category: StatusExpired, Label: "EXPIRADO", Severity: SeverityDanger}
	}
	return NormalizedStatus{Category: StatusUnknown, Label: strings.ToUpper(raw), Severity: SeverityDefault}
}
