package handlers

import (
	"net/http"
	"testing"

	"painel_master/internal/adapter/http/handlers/mocks"
	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBillPaymentHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillPaymentUseCase(ctrl)
		h := NewBillPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/bill-payments/quote", h.Quote)

		uc.EXPECT().Quote(gomock.Any(), 0.0).Return(usecase.BillPaymentQuote{}, entities.ErrInvalidAmount)

		w := doRequest(r, http.MethodPost, "/v1/bill-payments/quote", `{"valor":0}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillPaymentUseCase(ctrl)
		h := NewBillPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/bill-payments/quote", h.Quote)

		uc.EXPECT().Quote(gomock.Any(), 100.0).Return(usecase.BillPaymentQuote{OriginalAmount: 100, AmountWithFee: 103, Wallet: "lq1"}, nil)

		w := doRequest(r, http.MethodPost, "/v1/bill-payments/quote", `{"valor":100}`)
		expectStatus(t, w, http.StatusOK)
		if body := decodeBody(t, w); body["valor_com_taxa"] != float64(103) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestBillPaymentHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "no account data", err: entities.ErrAccountDataRequired, want: http.StatusBadRequest},
		{name: "no transaction id", err: entities.ErrTransactionIDRequired, want: http.StatusBadRequest},
		{name: "attachment too large", err: entities.ErrAttachmentTooLarge, want: http.StatusBadRequest},
		{name: "admin cannot submit", err: usecase.ErrIdentityRequired, want: http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIBillPaymentUseCase(ctrl)
			h := NewBillPaymentHandler(uc)

			r := gin.New()
			r.POST("/v1/bill-payments", withIdentity(testReseller), h.SubmitBillPayment)

			uc.EXPECT().Submit(gomock.Any(), testReseller, gomock.Any()).Return(entities.BillPaymentRequest{}, tc.err)

			w := doRequest(r, http.MethodPost, "/v1/bill-payments", `{"valor":100}`)
			expectStatus(t, w, tc.want)
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillPaymentUseCase(ctrl)
		h := NewBillPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/bill-payments", withIdentity(testReseller), h.SubmitBillPayment)

		want := usecase.DraftInput{Amount: 100, Barcode: "123", TransactionID: "tx-9", InvoiceName: "conta.pdf", InvoiceData: "data:application/pdf;base64,JVBERi0xLjQK"}
		uc.EXPECT().Submit(gomock.Any(), testReseller, want).Return(entities.BillPaymentRequest{
			ID: "b-1", AssociateID: "a-1", OriginalAmount: 100, AmountWithFee: 103, Status: entities.BillPaymentStatusPendente,
		}, nil)

		w := doRequest(r, http.MethodPost, "/v1/bill-payments", `{"valor":100,"codigo_barras":"123","transaction_id":"tx-9","fatura":{"nome":"conta.pdf","base64":"data:application/pdf;base64,JVBERi0xLjQK"}}`)
		expectStatus(t, w, http.StatusCreated)
		body := decodeBody(t, w)
		if body["id"] != "b-1" || body["status"] != "pendente" || body["status_label"] == "" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestBillPaymentHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list mine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillPaymentUseCase(ctrl)
		h := NewBillPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/bill-payments", withIdentity(testReseller), h.ListMyBillPayments)

		uc.EXPECT().ListMine(gomock.Any(), testReseller).Return(nil, nil)

		w := doRequest(r, http.MethodGet, "/v1/bill-payments", "")
		expectStatus(t, w, http.StatusOK)
		if w.Body.String() != "[]" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("list all with status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillPaymentUseCase(ctrl)
		h := NewBillPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/bill-payments/admin", h.ListAllBillPayments)

		uc.EXPECT().ListAll(gomock.Any(), "pendente").Return(usecase.BillPaymentList{
			Requests: []entities.BillPaymentRequest{{ID: "b-1", Status: entities.BillPaymentStatusPendente}},
			Stats:    entities.BillPaymentStats{Total: 2, Pending: 1, Paid: 1},
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/bill-payments/admin?status=pendente", "")
		expectStatus(t, w, http.StatusOK)
		stats, _ := decodeBody(t, w)["stats"].(map[string]any)
		if stats["total"] != float64(2) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get foreign request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillPaymentUseCase(ctrl)
		h := NewBillPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/bill-payments/:id", withIdentity(testReseller), h.GetBillPayment)

		uc.EXPECT().Get(gomock.Any(), testReseller, "b-2").Return(entities.BillPaymentRequest{}, usecase.ErrBillPaymentNotFound)

		w := doRequest(r, http.MethodGet, "/v1/bill-payments/b-2", "")
		expectStatus(t, w, http.StatusNotFound)
	})
}

func TestBillPaymentHandler_Process(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "unknown status", err: entities.ErrUnknownBillPaymentStatus, want: http.StatusBadRequest},
		{name: "receipt required", err: entities.ErrReceiptRequired, want: http.StatusBadRequest},
		{name: "finalized", err: entities.ErrBillPaymentFinalized, want: http.StatusConflict},
		{name: "concurrent change", err: usecase.ErrBillPaymentConflict, want: http.StatusConflict},
		{name: "not found", err: usecase.ErrBillPaymentNotFound, want: http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIBillPaymentUseCase(ctrl)
			h := NewBillPaymentHandler(uc)

			r := gin.New()
			r.POST("/v1/bill-payments/:id/process", h.ProcessBillPayment)

			uc.EXPECT().Process(gomock.Any(), "b-1", usecase.ProcessInput{Status: "pago"}).Return(entities.BillPaymentRequest{}, tc.err)

			w := doRequest(r, http.MethodPost, "/v1/bill-payments/b-1/process", `{"status":"pago"}`)
			expectStatus(t, w, tc.want)
		})
	}

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewBillPaymentHandler(mocks.NewMockIBillPaymentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/bill-payments/:id/process", h.ProcessBillPayment)

		w := doRequest(r, http.MethodPost, "/v1/bill-payments/b-1/process", `{}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("paid with receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillPaymentUseCase(ctrl)
		h := NewBillPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/bill-payments/:id/process", h.ProcessBillPayment)

		in := usecase.ProcessInput{Status: "pago", Notes: "ok", ReceiptName: "r.pdf", ReceiptData: "data:application/pdf;base64,JVBERi0xLjQK"}
		uc.EXPECT().Process(gomock.Any(), "b-1", in).Return(entities.BillPaymentRequest{ID: "b-1", Status: entities.BillPaymentStatusPago}, nil)

		w := doRequest(r, http.MethodPost, "/v1/bill-payments/b-1/process", `{"status":"pago","observacoes_admin":"ok","comprovante":{"nome":"r.pdf","base64":"data:application/pdf;base64,JVBERi0xLjQK"}}`)
		expectStatus(t, w, http.StatusOK)
		if body := decodeBody(t, w); body["status"] != "pago" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
