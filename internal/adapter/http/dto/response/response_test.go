package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase"
)

func TestFromIdentity(t *testing.T) {
	res := FromIdentity(entities.Identity{ID: "a-1", Role: entities.RoleReseller, FirstAccess: true})
	if !res.MustChangePassword {
		t.Fatalf("expected first access reseller to be asked for a new password")
	}
	res = FromIdentity(entities.Identity{ID: "admin", Role: entities.RoleAdmin, FirstAccess: true})
	if res.MustChangePassword {
		t.Fatalf("admin must never be forced to change password")
	}
}

func TestFromAssociateViews(t *testing.T) {
	due := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	views := []usecase.AssociateView{{
		Associate: entities.Associate{ID: "a-1", Name: "Loja", Username: "loja", PlanID: "p-1", DueDate: due, Password: "secret"},
		PlanName:  "Pro",
		Due:       entities.DueStatus{State: entities.DueStateActive, DaysLeft: 3},
	}}

	res := FromAssociateViews(views)
	if len(res) != 1 || res[0].DueDate != "2024-03-02" || res[0].PlanName != "Pro" || res[0].Due.DaysLeft != 3 {
		t.Fatalf("unexpected response: %+v", res)
	}

	raw, _ := json.Marshal(res)
	if strings.Contains(string(raw), "secret") {
		t.Fatalf("password leaked: %s", raw)
	}
}

func TestFromSalesReport_EmptyIsArray(t *testing.T) {
	raw, _ := json.Marshal(FromSalesReport(usecase.SalesReport{}))
	if !strings.Contains(string(raw), `"vendas":[]`) {
		t.Fatalf("expected empty array, got %s", raw)
	}
}

func TestFromRenewalViews_CivilDueDate(t *testing.T) {
	views := []usecase.RenewalView{{
		Renewal:        entities.Renewal{ID: "r-1", Status: entities.RenewalStatusPending},
		AssociateName:  "Loja",
		CurrentDueDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}}
	raw, _ := json.Marshal(FromRenewalViews(views))
	if !strings.Contains(string(raw), `"vencimento_atual":"2024-01-31"`) {
		t.Fatalf("unexpected body: %s", raw)
	}
}

func TestFromRenewalApproved(t *testing.T) {
	res := FromRenewalApproved(usecase.RenewalApproved{NewDueDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)})
	if res.NewDueDate != "2024-03-02" {
		t.Fatalf("unexpected due date %q", res.NewDueDate)
	}
}

func TestFromBillPaymentList(t *testing.T) {
	l := usecase.BillPaymentList{
		Requests: []entities.BillPaymentRequest{{ID: "b-1", Status: entities.BillPaymentStatusPendente}},
		Stats:    entities.BillPaymentStats{Total: 1, Pending: 1},
	}
	res := FromBillPaymentList(l)
	if len(res.Requests) != 1 || res.Requests[0].StatusLabel != entities.BillPaymentStatusPendente.Label() {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Stats.Total != 1 {
		t.Fatalf("unexpected stats: %+v", res.Stats)
	}
}

func TestFromMonthlySummary(t *testing.T) {
	res := FromMonthlySummary(usecase.MonthlySummary{Month: "2024-02", Label: "Fevereiro de 2024"})
	if res.Resellers == nil || res.Label != "Fevereiro de 2024" {
		t.Fatalf("unexpected response: %+v", res)
	}
}
