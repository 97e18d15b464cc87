package entities

import (
	"errors"
	"time"
)

// BillPaymentStatus is the lifecycle of a bill-payment request.
//
//	pendente -> em_processamento -> pago | cancelado
//	pendente -> pago | cancelado
//
// pago and cancelado are terminal.
type BillPaymentStatus string

const (
	BillPaymentStatusPendente        BillPaymentStatus = "pendente"
	BillPaymentStatusEmProcessamento BillPaymentStatus = "em_processamento"
	BillPaymentStatusPago            BillPaymentStatus = "pago"
	BillPaymentStatusCancelado       BillPaymentStatus = "cancelado"
)

var (
	ErrUnknownBillPaymentStatus     = errors.New("unknown bill payment status")
	ErrBillPaymentFinalized         = errors.New("bill payment request already finalized")
	ErrInvalidBillPaymentTransition = errors.New("invalid bill payment status transition")
	ErrReceiptRequired              = errors.New("a receipt is required to mark the request as paid")
)

func ParseBillPaymentStatus(s string) (BillPaymentStatus, error) {
	switch st := BillPaymentStatus(s); st {
	case BillPaymentStatusPendente, BillPaymentStatusEmProcessamento, BillPaymentStatusPago, BillPaymentStatusCancelado:
		return st, nil
	}
	return "", ErrUnknownBillPaymentStatus
}

func (s BillPaymentStatus) IsTerminal() bool {
	return s == BillPaymentStatusPago || s == BillPaymentStatusCancelado
}

func (s BillPaymentStatus) Label() string {
	switch s {
	case BillPaymentStatusPendente:
		return "Pendente"
	case BillPaymentStatusEmProcessamento:
		return "Em Processamento"
	case BillPaymentStatusPago:
		return "Concluído"
	case BillPaymentStatusCancelado:
		return "Cancelado"
	}
	return string(s)
}

func (s BillPaymentStatus) Severity() Severity {
	switch s {
	case BillPaymentStatusPendente:
		return SeverityWarning
	case BillPaymentStatusEmProcessamento:
		return SeverityInfo
	case BillPaymentStatusPago:
		return SeveritySuccess
	case BillPaymentStatusCancelado:
		return SeverityDanger
	}
	return SeverityDefault
}

// BillPaymentRequest asks the administrator to pay a third-party bill on a
// reseller's behalf. The reseller owns the fields set at submission; the
// administrator only ever writes status, admin notes and the receipt.
//
// AmountWithFee is fixed at creation and never recomputed.
type BillPaymentRequest struct {
	ID             string            `json:"id"`
	AssociateID    string            `json:"associado_id"`
	RequesterName  string            `json:"nome_solicitante"`
	OriginalAmount float64           `json:"valor_original"`
	AmountWithFee  float64           `json:"valor_com_taxa"`
	Barcode        string            `json:"codigo_barras,omitempty"`
	Invoice        *Attachment       `json:"fatura,omitempty"`
	RequesterTxID  string            `json:"transaction_id_revendedor"`
	RequesterNotes string            `json:"observacoes_revendedor,omitempty"`
	Status         BillPaymentStatus `json:"status"`
	AdminNotes     string            `json:"observacoes_admin,omitempty"`
	Receipt        *Attachment       `json:"comprovante,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// BillPaymentUpdate is the administrator-owned field subset written by a
// status transition.
type BillPaymentUpdate struct {
	Status     BillPaymentStatus
	AdminNotes string
	Receipt    *Attachment
	UpdatedAt  time.Time
}

// Transition validates moving r to next and returns the field subset to
// persist. r is never modified.
func (r BillPaymentRequest) Transition(next BillPaymentStatus, notes string, receipt *Attachment, now time.Time) (BillPaymentUpdate, error) {
	if _, err := ParseBillPaymentStatus(string(next)); err != nil {
		return BillPaymentUpdate{}, err
	}
	if r.Status.IsTerminal() {
		return BillPaymentUpdate{}, ErrBillPaymentFinalized
	}

	upd := BillPaymentUpdate{Status: next, AdminNotes: notes, UpdatedAt: now}
	switch next {
	case BillPaymentStatusEmProcessamento:
		if r.Status != BillPaymentStatusPendente {
			return BillPaymentUpdate{}, ErrInvalidBillPaymentTransition
		}
	case BillPaymentStatusPago:
		if receipt.IsEmpty() {
			return BillPaymentUpdate{}, ErrReceiptRequired
		}
		upd.Receipt = receipt
	case BillPaymentStatusCancelado:
	default:
		return BillPaymentUpdate{}, ErrInvalidBillPaymentTransition
	}
	return upd, nil
}

// Apply returns r with the update merged in.
func (r BillPaymentRequest) Apply(u BillPaymentUpdate) BillPaymentRequest {
	r.Status = u.Status
	r.AdminNotes = u.AdminNotes
	r.UpdatedAt = u.UpdatedAt
	if u.Receipt != nil {
		r.Receipt = u.Receipt
	}
	return r
}

// BillPaymentStats summarizes the administrator queue.
type BillPaymentStats struct {
	Total            int     `json:"total"`
	Pending          int     `json:"pendentes"`
	InProgress       int     `json:"em_processamento"`
	Paid             int     `json:"pagas"`
	Cancelled        int     `json:"canceladas"`
	OutstandingValue float64 `json:"valor_pendente"`
}

// SummarizeBillPayments counts requests by status. The outstanding value sums
// the original amounts of requests that are still open.
func SummarizeBillPayments(reqs []BillPaymentRequest) BillPaymentStats {
	var st BillPaymentStats
	open := make([]float64, 0, len(reqs))
	for _, r := range reqs {
		st.Total++
		switch r.Status {
		case BillPaymentStatusPendente:
			st.Pending++
			open = append(open, r.OriginalAmount)
		case BillPaymentStatusEmProcessamento:
			st.InProgress++
			open = append(open, r.OriginalAmount)
		case BillPaymentStatusPago:
			st.Paid++
		case BillPaymentStatusCancelado:
			st.Cancelled++
		}
	}
	st.OutstandingValue = Sum(open...)
	return st
}
