package response

import "painel_master/internal/usecase"

type CommissionsResponse struct {
	Items []usecase.Commission `json:"comissoes"`
	Total float64              `json:"total"`
	Count int                  `json:"quantidade"`
}

func FromCommissionReport(r usecase.CommissionReport) CommissionsResponse {
	items := r.Items
	if items == nil {
		items = []usecase.Commission{}
	}
	return CommissionsResponse{Items: items, Total: r.Total, Count: r.Count}
}

type MonthlySummaryResponse struct {
	Month      string                    `json:"mes"`
	Label      string                    `json:"label"`
	Resellers  []usecase.ResellerSummary `json:"revendedores"`
	TotalSold  float64                   `json:"total_vendido"`
	SalesCount int                       `json:"qtd_vendas"`
}

func FromMonthlySummary(s usecase.MonthlySummary) MonthlySummaryResponse {
	resellers := s.Resellers
	if resellers == nil {
		resellers = []usecase.ResellerSummary{}
	}
	return MonthlySummaryResponse{
		Month:      s.Month,
		Label:      s.Label,
		Resellers:  resellers,
		TotalSold:  s.TotalSold,
		SalesCount: s.SalesCount,
	}
}
