package entities

import (
	"errors"
	"strings"
	"time"
)

// DraftStep is the position in the bill-payment wizard. The draft is never
// persisted; abandoning it discards everything.
type DraftStep int

const (
	StepAmount DraftStep = iota + 1
	StepAccountData
	StepSendFunds
	StepConfirm
)

var (
	ErrDraftWrongStep        = errors.New("operation not allowed at the current wizard step")
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrAccountDataRequired   = errors.New("a barcode or an invoice attachment is required")
	ErrTransactionIDRequired = errors.New("the transfer transaction id is required")
	ErrDraftAlreadySubmitted = errors.New("draft already submitted")
)

// BillPaymentDraft walks a reseller through amount, account data, funds
// transfer and confirmation. Each setter is only valid on its own step and
// Next refuses to leave a step whose data is incomplete.
type BillPaymentDraft struct {
	step      DraftStep
	submitted bool

	OriginalAmount float64
	AmountWithFee  float64
	Barcode        string
	Invoice        *Attachment
	Notes          string
	TransactionID  string
}

func NewBillPaymentDraft() *BillPaymentDraft {
	return &BillPaymentDraft{step: StepAmount}
}

func (d *BillPaymentDraft) Step() DraftStep {
	return d.step
}

// SetAmount records the bill amount and derives the fee-inclusive total.
func (d *BillPaymentDraft) SetAmount(amount float64) error {
	if d.step != StepAmount {
		return ErrDraftWrongStep
	}
	d.OriginalAmount = amount
	d.AmountWithFee = 0
	if amount > 0 {
		d.AmountWithFee = FeeAmount(amount)
	}
	return nil
}

func (d *BillPaymentDraft) SetAccountData(barcode string, invoice *Attachment, notes string) error {
	if d.step != StepAccountData {
		return ErrDraftWrongStep
	}
	d.Barcode = strings.TrimSpace(barcode)
	d.Invoice = invoice
	d.Notes = strings.TrimSpace(notes)
	return nil
}

func (d *BillPaymentDraft) SetTransactionID(id string) error {
	if d.step != StepConfirm {
		return ErrDraftWrongStep
	}
	d.TransactionID = strings.TrimSpace(id)
	return nil
}

// Next advances one step when the current step is complete.
func (d *BillPaymentDraft) Next() error {
	switch d.step {
	case StepAmount:
		if d.OriginalAmount <= 0 {
			return ErrInvalidAmount
		}
	case StepAccountData:
		if d.Barcode == "" && d.Invoice.IsEmpty() {
			return ErrAccountDataRequired
		}
	case StepSendFunds:
	default:
		return ErrDraftWrongStep
	}
	d.step++
	return nil
}

// Back goes one step back; it is a no-op on the first step.
func (d *BillPaymentDraft) Back() {
	if d.step > StepAmount && !d.submitted {
		d.step--
	}
}

// Submit turns the completed draft into a pending request for requester.
func (d *BillPaymentDraft) Submit(requester Identity, now time.Time) (BillPaymentRequest, error) {
	if d.submitted {
		return BillPaymentRequest{}, ErrDraftAlreadySubmitted
	}
	if d.step != StepConfirm {
		return BillPaymentRequest{}, ErrDraftWrongStep
	}
	if d.TransactionID == "" {
		return BillPaymentRequest{}, ErrTransactionIDRequired
	}
	d.submitted = true
	return BillPaymentRequest{
		AssociateID:    requester.ID,
		RequesterName:  requester.Name,
		OriginalAmount: d.OriginalAmount,
		AmountWithFee:  d.AmountWithFee,
		Barcode:        d.Barcode,
		Invoice:        d.Invoice,
		RequesterTxID:  d.TransactionID,
		RequesterNotes: d.Notes,
		Status:         BillPaymentStatusPendente,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
