package repository

import (
	"context"
	"strings"

	"painel_master/internal/domain/entities"
	"painel_master/internal/infrastructure/rowstore"
	"painel_master/internal/usecase/interfaces"
)

type billPaymentItem struct {
	ID             string  `mapstructure:"id,omitempty"`
	AssociateID    string  `mapstructure:"associado_id"`
	RequesterName  string  `mapstructure:"nome_solicitante"`
	OriginalAmount float64 `mapstructure:"valor_original"`
	AmountWithFee  float64 `mapstructure:"valor_com_taxa"`
	Barcode        string  `mapstructure:"codigo_barras,omitempty"`
	InvoiceData    string  `mapstructure:"fatura_base64,omitempty"`
	InvoiceName    string  `mapstructure:"fatura_nome,omitempty"`
	RequesterTxID  string  `mapstructure:"transaction_id_revendedor"`
	RequesterNotes string  `mapstructure:"observacoes_revendedor,omitempty"`
	Status         string  `mapstructure:"status"`
	AdminNotes     string  `mapstructure:"observacoes_admin,omitempty"`
	ReceiptData    string  `mapstructure:"comprovante_base64,omitempty"`
	ReceiptName    string  `mapstructure:"comprovante_nome,omitempty"`
	CreatedAt      string  `mapstructure:"created_at,omitempty"`
	UpdatedAt      string  `mapstructure:"updated_at,omitempty"`
}

// BillPaymentRepository persists bill-payment requests with their
// attachments embedded as data URIs.
type BillPaymentRepository struct {
	store rowstore.RowStore
	table string
}

var _ interfaces.IBillPaymentRepository = (*BillPaymentRepository)(nil)

func NewBillPaymentRepository(store rowstore.RowStore, table string) *BillPaymentRepository {
	return &BillPaymentRepository{store: store, table: table}
}

func (r *BillPaymentRepository) Create(ctx context.Context, req entities.BillPaymentRequest) (entities.BillPaymentRequest, error) {
	row, err := encodeItem(toBillPaymentItem(req))
	if err != nil {
		return entities.BillPaymentRequest{}, err
	}
	created, err := r.store.Insert(ctx, r.table, row)
	if err != nil {
		return entities.BillPaymentRequest{}, err
	}
	return decodeBillPayment(created)
}

func (r *BillPaymentRepository) GetByID(ctx context.Context, id string) (entities.BillPaymentRequest, error) {
	rows, err := r.store.Select(ctx, r.table, rowstore.Query{
		Filters: []rowstore.Filter{rowstore.Eq("id", id)},
		Limit:   1,
	})
	if err != nil {
		return entities.BillPaymentRequest{}, err
	}
	if len(rows) == 0 {
		return entities.BillPaymentRequest{}, nil
	}
	return decodeBillPayment(rows[0])
}

func (r *BillPaymentRepository) ListByAssociate(ctx context.Context, associateID string) ([]entities.BillPaymentRequest, error) {
	return r.list(ctx, rowstore.Query{
		Filters: []rowstore.Filter{rowstore.Eq("associado_id", associateID)},
		OrderBy: "created_at",
		Desc:    true,
	})
}

func (r *BillPaymentRepository) List(ctx context.Context) ([]entities.BillPaymentRequest, error) {
	return r.list(ctx, rowstore.Query{OrderBy: "created_at", Desc: true})
}

func (r *BillPaymentRepository) UpdateStatus(ctx context.Context, id string, from entities.BillPaymentStatus, u entities.BillPaymentUpdate) (entities.BillPaymentRequest, bool, error) {
	patch := rowstore.Row{
		"status":            string(u.Status),
		"observacoes_admin": u.AdminNotes,
		"updated_at":        u.UpdatedAt,
	}
	if !u.Receipt.IsEmpty() {
		patch["comprovante_base64"] = u.Receipt.DataURI
		patch["comprovante_nome"] = u.Receipt.Name
	}

	rows, err := r.store.Update(ctx, r.table,
		[]rowstore.Filter{rowstore.Eq("id", id), rowstore.Eq("status", string(from))},
		patch,
	)
	if err != nil {
		return entities.BillPaymentRequest{}, false, err
	}
	if len(rows) == 0 {
		return entities.BillPaymentRequest{}, false, nil
	}
	updated, err := decodeBillPayment(rows[0])
	if err != nil {
		return entities.BillPaymentRequest{}, false, err
	}
	return updated, true, nil
}

func (r *BillPaymentRepository) list(ctx context.Context, q rowstore.Query) ([]entities.BillPaymentRequest, error) {
	rows, err := r.store.Select(ctx, r.table, q)
	if err != nil {
		return nil, err
	}
	out := make([]entities.BillPaymentRequest, 0, len(rows))
	for _, row := range rows {
		req, err := decodeBillPayment(row)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

func toBillPaymentItem(req entities.BillPaymentRequest) billPaymentItem {
	it := billPaymentItem{
		ID:             req.ID,
		AssociateID:    req.AssociateID,
		RequesterName:  req.RequesterName,
		OriginalAmount: req.OriginalAmount,
		AmountWithFee:  req.AmountWithFee,
		Barcode:        req.Barcode,
		RequesterTxID:  req.RequesterTxID,
		RequesterNotes: req.RequesterNotes,
		Status:         string(req.Status),
		AdminNotes:     req.AdminNotes,
		CreatedAt:      formatTimestamp(req.CreatedAt),
		UpdatedAt:      formatTimestamp(req.UpdatedAt),
	}
	if !req.Invoice.IsEmpty() {
		it.InvoiceData, it.InvoiceName = req.Invoice.DataURI, req.Invoice.Name
	}
	if !req.Receipt.IsEmpty() {
		it.ReceiptData, it.ReceiptName = req.Receipt.DataURI, req.Receipt.Name
	}
	return it
}

func decodeBillPayment(row rowstore.Row) (entities.BillPaymentRequest, error) {
	var it billPaymentItem
	if err := decodeRow(row, &it); err != nil {
		return entities.BillPaymentRequest{}, err
	}
	return entities.BillPaymentRequest{
		ID:             it.ID,
		AssociateID:    it.AssociateID,
		RequesterName:  it.RequesterName,
		OriginalAmount: it.OriginalAmount,
		AmountWithFee:  it.AmountWithFee,
		Barcode:        it.Barcode,
		Invoice:        storedAttachment(it.InvoiceName, it.InvoiceData),
		RequesterTxID:  it.RequesterTxID,
		RequesterNotes: it.RequesterNotes,
		Status:         entities.BillPaymentStatus(it.Status),
		AdminNotes:     it.AdminNotes,
		Receipt:        storedAttachment(it.ReceiptName, it.ReceiptData),
		CreatedAt:      parseTimestamp(it.CreatedAt),
		UpdatedAt:      parseTimestamp(it.UpdatedAt),
	}, nil
}

// storedAttachment rebuilds an attachment from its columns. Rows were
// validated on the way in, so only the declared media type is read back.
func storedAttachment(name, dataURI string) *entities.Attachment {
	if dataURI == "" {
		return nil
	}
	a := &entities.Attachment{Name: name, DataURI: dataURI}
	if rest, ok := strings.CutPrefix(dataURI, "data:"); ok {
		if i := strings.IndexAny(rest, ";,"); i >= 0 {
			a.MIME = rest[:i]
		}
	}
	return a
}
