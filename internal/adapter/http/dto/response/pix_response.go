package response

import (
	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase"
)

type SalesResponse struct {
	Sales         []entities.PaidTransaction `json:"vendas"`
	Count         int                        `json:"quantidade"`
	TotalReceived float64                    `json:"total_recebido"`
}

func FromSalesReport(r usecase.SalesReport) SalesResponse {
	sales := r.Sales
	if sales == nil {
		sales = []entities.PaidTransaction{}
	}
	return SalesResponse{Sales: sales, Count: r.Count, TotalReceived: r.TotalReceived}
}

type PixLogsResponse struct {
	Logs  []entities.PixLog   `json:"logs"`
	Stats usecase.PixLogStats `json:"stats"`
}

func FromPixLogReport(r usecase.PixLogReport) PixLogsResponse {
	logs := r.Logs
	if logs == nil {
		logs = []entities.PixLog{}
	}
	return PixLogsResponse{Logs: logs, Stats: r.Stats}
}

type TransactionResponse struct {
	Transaction entities.TransactionCheck `json:"transacao"`
	Status      entities.NormalizedStatus `json:"status"`
}

func FromVerifiedTransaction(v usecase.VerifiedTransaction) TransactionResponse {
	return TransactionResponse{Transaction: v.Transaction, Status: v.Status}
}
