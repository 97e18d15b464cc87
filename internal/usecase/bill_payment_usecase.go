package usecase

//go:generate mockgen -source=bill_payment_usecase.go -destination=../adapter/http/handlers/mocks/bill_payment_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"log"
	"time"

	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase/interfaces"
)

const (
	notificationNewBillPayment = "nova_solicitacao_pagamento"
	notificationTimeout        = 10 * time.Second
)

var (
	ErrBillPaymentNotFound = errors.New("bill payment request not found")
	ErrBillPaymentConflict = errors.New("bill payment request was changed concurrently")
)

type DraftInput struct {
	Amount        float64
	Barcode       string
	InvoiceName   string
	InvoiceData   string
	Notes         string
	TransactionID string
}

type ProcessInput struct {
	Status      string
	Notes       string
	ReceiptName string
	ReceiptData string
}

// BillPaymentQuote is what the reseller must transfer and where.
type BillPaymentQuote struct {
	OriginalAmount float64 `json:"valor_original"`
	AmountWithFee  float64 `json:"valor_com_taxa"`
	Wallet         string  `json:"carteira_liquid"`
}

type BillPaymentList struct {
	Requests []entities.BillPaymentRequest
	Stats    entities.BillPaymentStats
}

type billPaymentNotification struct {
	Type          string  `json:"tipo"`
	RequestID     string  `json:"solicitacao_id"`
	Reseller      string  `json:"revendedor"`
	BillAmount    float64 `json:"valor_conta"`
	AmountWithFee float64 `json:"valor_com_taxa"`
	Barcode       *string `json:"codigo_barras"`
	Notes         *string `json:"observacoes"`
	Date          string  `json:"data"`
}

type IBillPaymentUseCase interface {
	Quote(ctx context.Context, amount float64) (BillPaymentQuote, error)
	Submit(ctx context.Context, identity entities.Identity, in DraftInput) (entities.BillPaymentRequest, error)
	ListMine(ctx context.Context, identity entities.Identity) ([]entities.BillPaymentRequest, error)
	ListAll(ctx context.Context, status string) (BillPaymentList, error)
	Get(ctx context.Context, identity entities.Identity, id string) (entities.BillPaymentRequest, error)
	Process(ctx context.Context, id string, in ProcessInput) (entities.BillPaymentRequest, error)
}

type BillPaymentUseCase struct {
	repo       interfaces.IBillPaymentRepository
	configRepo interfaces.IConfigurationRepository
	notifier   interfaces.INotifier
	now        func() time.Time
	background func(func())
}

var _ IBillPaymentUseCase = (*BillPaymentUseCase)(nil)

func NewBillPaymentUseCase(repo interfaces.IBillPaymentRepository, configRepo interfaces.IConfigurationRepository, notifier interfaces.INotifier) *BillPaymentUseCase {
	return &BillPaymentUseCase{repo: repo, configRepo: configRepo, notifier: notifier, now: time.Now, background: func(f func()) { go f() }}
}

func (u *BillPaymentUseCase) Quote(ctx context.Context, amount float64) (BillPaymentQuote, error) {
	if amount <= 0 {
		return BillPaymentQuote{}, entities.ErrInvalidAmount
	}
	cfg, err := u.configRepo.GetAll(ctx)
	if err != nil {
		return BillPaymentQuote{}, err
	}
	return BillPaymentQuote{
		OriginalAmount: amount,
		AmountWithFee:  entities.FeeAmount(amount),
		Wallet:         cfg.Get(entities.ConfigPayoutWallet),
	}, nil
}

// Submit walks the wizard with the given input, so the stored request obeys
// the same step guards as the interactive flow.
func (u *BillPaymentUseCase) Submit(ctx context.Context, identity entities.Identity, in DraftInput) (entities.BillPaymentRequest, error) {
	if !identity.IsReseller() {
		return entities.BillPaymentRequest{}, ErrIdentityRequired
	}
	invoice, err := entities.ParseAttachment(in.InvoiceName, in.InvoiceData)
	if err != nil {
		return entities.BillPaymentRequest{}, err
	}

	d := entities.NewBillPaymentDraft()
	steps := []func() error{
		func() error { return d.SetAmount(in.Amount) },
		d.Next,
		func() error { return d.SetAccountData(in.Barcode, invoice, in.Notes) },
		d.Next,
		d.Next,
		func() error { return d.SetTransactionID(in.TransactionID) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return entities.BillPaymentRequest{}, err
		}
	}
	req, err := d.Submit(identity, u.now())
	if err != nil {
		return entities.BillPaymentRequest{}, err
	}

	created, err := u.repo.Create(ctx, req)
	if err != nil {
		log.Printf("[bill_payment][usecase] create failed associate_id=%s err=%v", identity.ID, err)
		return entities.BillPaymentRequest{}, err
	}
	log.Printf("[bill_payment][usecase] submitted id=%s associate_id=%s amount=%.2f", created.ID, identity.ID, created.OriginalAmount)

	u.notifyNewRequest(ctx, created)
	return created, nil
}

// notifyNewRequest is best effort: it runs after the response on its own
// deadline, and failures are logged and dropped.
func (u *BillPaymentUseCase) notifyNewRequest(ctx context.Context, r entities.BillPaymentRequest) {
	ctx = context.WithoutCancel(ctx)
	u.background(func() {
		ctx, cancel := context.WithTimeout(ctx, notificationTimeout)
		defer cancel()
		u.sendNotification(ctx, r)
	})
}

func (u *BillPaymentUseCase) sendNotification(ctx context.Context, r entities.BillPaymentRequest) {
	cfg, err := u.configRepo.GetAll(ctx)
	if err != nil {
		log.Printf("[bill_payment][usecase] notification skipped id=%s err=%v", r.ID, err)
		return
	}
	url := cfg.Get(entities.ConfigNotificationWebhook)
	if url == "" {
		return
	}
	payload := billPaymentNotification{
		Type:          notificationNewBillPayment,
		RequestID:     r.ID,
		Reseller:      r.RequesterName,
		BillAmount:    r.OriginalAmount,
		AmountWithFee: r.AmountWithFee,
		Barcode:       nullable(r.Barcode),
		Notes:         nullable(r.RequesterNotes),
		Date:          u.now().UTC().Format(time.RFC3339Nano),
	}
	if err := u.notifier.Notify(ctx, url, payload); err != nil {
		log.Printf("[bill_payment][usecase] notification failed id=%s err=%v", r.ID, err)
	}
}

func (u *BillPaymentUseCase) ListMine(ctx context.Context, identity entities.Identity) ([]entities.BillPaymentRequest, error) {
	if !identity.IsReseller() {
		return nil, ErrIdentityRequired
	}
	return u.repo.ListByAssociate(ctx, identity.ID)
}

// ListAll returns every request matching status ("" or "todos" for all);
// stats cover the whole table.
func (u *BillPaymentUseCase) ListAll(ctx context.Context, status string) (BillPaymentList, error) {
	var filter entities.BillPaymentStatus
	if status != "" && status != "todos" {
		st, err := entities.ParseBillPaymentStatus(status)
		if err != nil {
			return BillPaymentList{}, err
		}
		filter = st
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return BillPaymentList{}, err
	}
	out := all
	if filter != "" {
		out = make([]entities.BillPaymentRequest, 0, len(all))
		for _, r := range all {
			if r.Status == filter {
				out = append(out, r)
			}
		}
	}
	return BillPaymentList{Requests: out, Stats: entities.SummarizeBillPayments(all)}, nil
}

// Get hides other resellers' requests behind ErrBillPaymentNotFound.
func (u *BillPaymentUseCase) Get(ctx context.Context, identity entities.Identity, id string) (entities.BillPaymentRequest, error) {
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillPaymentRequest{}, err
	}
	if r.ID == "" || (!identity.IsAdmin() && r.AssociateID != identity.ID) {
		return entities.BillPaymentRequest{}, ErrBillPaymentNotFound
	}
	return r, nil
}

func (u *BillPaymentUseCase) Process(ctx context.Context, id string, in ProcessInput) (entities.BillPaymentRequest, error) {
	next, err := entities.ParseBillPaymentStatus(in.Status)
	if err != nil {
		return entities.BillPaymentRequest{}, err
	}
	receipt, err := entities.ParseAttachment(in.ReceiptName, in.ReceiptData)
	if err != nil {
		return entities.BillPaymentRequest{}, err
	}
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillPaymentRequest{}, err
	}
	if current.ID == "" {
		return entities.BillPaymentRequest{}, ErrBillPaymentNotFound
	}

	upd, err := current.Transition(next, in.Notes, receipt, u.now())
	if err != nil {
		return entities.BillPaymentRequest{}, err
	}
	updated, ok, err := u.repo.UpdateStatus(ctx, id, current.Status, upd)
	if err != nil {
		return entities.BillPaymentRequest{}, err
	}
	if !ok {
		log.Printf("[bill_payment][usecase] status changed concurrently id=%s from=%s", id, current.Status)
		return entities.BillPaymentRequest{}, ErrBillPaymentConflict
	}
	log.Printf("[bill_payment][usecase] processed id=%s from=%s to=%s", id, current.Status, next)
	return updated, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
