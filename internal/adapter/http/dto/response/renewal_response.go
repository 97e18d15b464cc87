package response

import (
	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase"
)

type RenewalResponse struct {
	usecase.RenewalView
	CurrentDueDate string `json:"vencimento_atual"`
}

func FromRenewalViews(views []usecase.RenewalView) []RenewalResponse {
	out := make([]RenewalResponse, 0, len(views))
	for _, v := range views {
		r := RenewalResponse{RenewalView: v}
		if !v.CurrentDueDate.IsZero() {
			r.CurrentDueDate = entities.FormatCivilDate(v.CurrentDueDate)
		}
		out = append(out, r)
	}
	return out
}

type RenewalRequestedResponse struct {
	Renewal entities.Renewal   `json:"renovacao"`
	Charge  entities.PixCharge `json:"cobranca"`
}

func FromRenewalRequested(r usecase.RenewalRequested) RenewalRequestedResponse {
	return RenewalRequestedResponse{Renewal: r.Renewal, Charge: r.Charge}
}

type RenewalApprovedResponse struct {
	Renewal    entities.Renewal `json:"renovacao"`
	NewDueDate string           `json:"nova_data_vencimento"`
}

func FromRenewalApproved(r usecase.RenewalApproved) RenewalApprovedResponse {
	return RenewalApprovedResponse{Renewal: r.Renewal, NewDueDate: entities.FormatCivilDate(r.NewDueDate)}
}
