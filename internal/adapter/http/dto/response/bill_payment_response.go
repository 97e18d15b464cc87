package response

import (
	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase"
)

type BillPaymentResponse struct {
	entities.BillPaymentRequest
	StatusLabel string            `json:"status_label"`
	Severity    entities.Severity `json:"severity"`
}

func FromBillPayment(r entities.BillPaymentRequest) BillPaymentResponse {
	return BillPaymentResponse{BillPaymentRequest: r, StatusLabel: r.Status.Label(), Severity: r.Status.Severity()}
}

func FromBillPayments(reqs []entities.BillPaymentRequest) []BillPaymentResponse {
	out := make([]BillPaymentResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, FromBillPayment(r))
	}
	return out
}

type BillPaymentListResponse struct {
	Requests []BillPaymentResponse    `json:"solicitacoes"`
	Stats    entities.BillPaymentStats `json:"stats"`
}

func FromBillPaymentList(l usecase.BillPaymentList) BillPaymentListResponse {
	return BillPaymentListResponse{Requests: FromBillPayments(l.Requests), Stats: l.Stats}
}
