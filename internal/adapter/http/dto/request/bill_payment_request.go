package request

import (
	"strings"

	"painel_master/internal/usecase"
)

type AttachmentRequest struct {
	Name string `json:"nome"`
	Data string `json:"base64"`
}

type BillPaymentQuoteRequest struct {
	Amount float64 `json:"valor"`
}

type BillPaymentRequest struct {
	Amount        float64            `json:"valor"`
	Barcode       string             `json:"codigo_barras"`
	Invoice       *AttachmentRequest `json:"fatura"`
	Notes         string             `json:"observacoes"`
	TransactionID string             `json:"transaction_id"`
}

func (r BillPaymentRequest) ToInput() usecase.DraftInput {
	in := usecase.DraftInput{
		Amount:        r.Amount,
		Barcode:       strings.TrimSpace(r.Barcode),
		Notes:         strings.TrimSpace(r.Notes),
		TransactionID: strings.TrimSpace(r.TransactionID),
	}
	if r.Invoice != nil {
		in.InvoiceName = r.Invoice.Name
		in.InvoiceData = r.Invoice.Data
	}
	return in
}

type ProcessBillPaymentRequest struct {
	Status  string             `json:"status" binding:"required"`
	Notes   string             `json:"observacoes_admin"`
	Receipt *AttachmentRequest `json:"comprovante"`
}

func (r ProcessBillPaymentRequest) ToInput() usecase.ProcessInput {
	in := usecase.ProcessInput{
		Status: strings.TrimSpace(r.Status),
		Notes:  strings.TrimSpace(r.Notes),
	}
	if r.Receipt != nil {
		in.ReceiptName = r.Receipt.Name
		in.ReceiptData = r.Receipt.Data
	}
	return in
}
