package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"painel_master/internal/domain/entities"
	mock_interfaces "painel_master/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type reportMocks struct {
	assoc *mock_interfaces.MockIAssociateRepository
	plans *mock_interfaces.MockIPlanRepository
	logs  *mock_interfaces.MockIPixLogRepository
}

func newReportUseCase(t *testing.T) (reportMocks, *ReportUseCase) {
	ctrl := gomock.NewController(t)
	m := reportMocks{
		assoc: mock_interfaces.NewMockIAssociateRepository(ctrl),
		plans: mock_interfaces.NewMockIPlanRepository(ctrl),
		logs:  mock_interfaces.NewMockIPixLogRepository(ctrl),
	}
	uc := NewReportUseCase(m.assoc, m.plans, m.logs, time.UTC)
	uc.now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }
	return m, uc
}

func at(y int, mo time.Month, d, h int) time.Time {
	return time.Date(y, mo, d, h, 0, 0, 0, time.UTC)
}

func TestReportUseCase_Commissions(t *testing.T) {
	m, uc := newReportUseCase(t)
	m.logs.EXPECT().ListResellerLogs(gomock.Any()).Return([]entities.PixLog{
		{ChargeID: "1", AssociateID: "a-1", Amount: 200, Status: entities.PixLogStatusPaid, ClientName: "Maria"},
		{ChargeID: "2", AssociateID: "gone", Amount: 50, Status: entities.PixLogStatusPaid},
		{ChargeID: "3", AssociateID: "a-1", Amount: 999, Status: entities.PixLogStatusPending},
	}, nil)
	m.assoc.EXPECT().List(gomock.Any()).Return([]entities.Associate{{ID: "a-1", Name: "Loja"}}, nil)

	rep, err := uc.Commissions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Count != 2 || rep.Total != 2.5 {
		t.Fatalf("unexpected totals: count=%d total=%v", rep.Count, rep.Total)
	}
	if rep.Items[0].ResellerName != "Loja" || rep.Items[0].Commission != 2 {
		t.Fatalf("unexpected first item: %+v", rep.Items[0])
	}
	if rep.Items[1].ResellerName != "Desconhecido" || rep.Items[1].ClientName != "-" {
		t.Fatalf("unexpected second item: %+v", rep.Items[1])
	}
}

func TestReportUseCase_MonthlySummary(t *testing.T) {
	t.Run("invalid month", func(t *testing.T) {
		_, uc := newReportUseCase(t)
		if _, err := uc.MonthlySummary(context.Background(), "03/2024"); !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("expected ErrInvalidMonth, got %v", err)
		}
	})

	t.Run("fixture", func(t *testing.T) {
		m, uc := newReportUseCase(t)
		m.assoc.EXPECT().List(gomock.Any()).Return([]entities.Associate{
			{ID: "a-1", Name: "Alfa", Username: "alfa"},
			{ID: "a-2", Name: "Beta", Username: "beta"},
			{ID: "a-3", Name: "Gama", Username: "gama"},
		}, nil)
		start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)
		// The repository filters by range; the January row checks the use
		// case does not trust that blindly.
		m.logs.EXPECT().ListPaidBetween(gomock.Any(), start, end).Return([]entities.PixLog{
			{AssociateID: "a-2", Amount: 30, Status: entities.PixLogStatusPaid, CreatedAt: at(2024, 2, 1, 0)},
			{AssociateID: "a-2", Amount: 20, Status: entities.PixLogStatusPaid, CreatedAt: at(2024, 2, 29, 23)},
			{AssociateID: "a-1", Amount: 50, Status: entities.PixLogStatusPaid, CreatedAt: at(2024, 2, 15, 10)},
			{AssociateID: "a-1", Amount: 70, Status: entities.PixLogStatusPaid, CreatedAt: at(2024, 1, 31, 23)},
			{AssociateID: "ghost", Amount: 5, Status: entities.PixLogStatusPaid, CreatedAt: at(2024, 2, 10, 10)},
		}, nil)

		sum, err := uc.MonthlySummary(context.Background(), "2024-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sum.Resellers) != 3 {
			t.Fatalf("expected every associate listed, got %d", len(sum.Resellers))
		}
		order := []string{"a-1", "a-2", "a-3"}
		for i, id := range order {
			if sum.Resellers[i].AssociateID != id {
				t.Fatalf("position %d: expected %s, got %s", i, id, sum.Resellers[i].AssociateID)
			}
		}
		if sum.Resellers[0].TotalSold != 50 || sum.Resellers[1].TotalSold != 50 || sum.Resellers[1].SalesCount != 2 {
			t.Fatalf("unexpected rows: %+v", sum.Resellers)
		}
		if sum.Resellers[2].SalesCount != 0 || sum.Resellers[2].TotalSold != 0 {
			t.Fatalf("zero-sale associate should be present: %+v", sum.Resellers[2])
		}
		if sum.TotalSold != 100 || sum.SalesCount != 3 || sum.Label != "Fevereiro de 2024" {
			t.Fatalf("unexpected totals: %+v", sum)
		}
	})
}

func TestReportUseCase_Months(t *testing.T) {
	_, uc := newReportUseCase(t)
	got := uc.Months(0)
	if len(got) != 6 || got[0].Value != "2024-03" || got[5].Value != "2023-10" {
		t.Fatalf("unexpected months: %+v", got)
	}
}

func TestReportUseCase_Dashboard(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		m, uc := newReportUseCase(t)
		associates := make([]entities.Associate, 0, 7)
		for i := 0; i < 7; i++ {
			associates = append(associates, entities.Associate{ID: string(rune('a' + i)), PlanID: "p-1", DueDate: at(2024, 3, 5+i, 0)})
		}
		m.assoc.EXPECT().List(gomock.Any()).Return(associates, nil)
		m.plans.EXPECT().ListActive(gomock.Any()).Return([]entities.Plan{{ID: "p-1", Name: "Pro"}}, nil)
		m.logs.EXPECT().ListResellerLogs(gomock.Any()).Return([]entities.PixLog{
			{Amount: 300, Status: entities.PixLogStatusPaid},
			{Amount: 200, Status: entities.PixLogStatusPaid},
			{Amount: 1000, Status: entities.PixLogStatusExpired},
		}, nil)

		d, err := uc.Dashboard(context.Background(), testAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Due dates 03-05..03-11 against today 03-10.
		if d.ActiveAssociates != 2 || d.ExpiredAssociates != 5 {
			t.Fatalf("unexpected counts: active=%d expired=%d", d.ActiveAssociates, d.ExpiredAssociates)
		}
		if d.TotalSales != 500 || d.Commissions != 5 || d.PaidSalesCount != 2 {
			t.Fatalf("unexpected sales: %+v", d)
		}
		if len(d.RecentAssociates) != 5 || d.RecentAssociates[0].PlanName != "Pro" {
			t.Fatalf("unexpected recent associates: %+v", d.RecentAssociates)
		}
	})

	t.Run("reseller", func(t *testing.T) {
		m, uc := newReportUseCase(t)
		m.logs.EXPECT().ListByAssociate(gomock.Any(), "a-1").Return([]entities.PixLog{
			{Amount: 10, Status: entities.PixLogStatusPaid},
			{Amount: 5, Status: entities.PixLogStatusPending},
		}, nil)

		d, err := uc.Dashboard(context.Background(), testReseller)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.PaidSalesCount != 1 || d.TotalSales != 10 || d.RecentAssociates != nil {
			t.Fatalf("unexpected dashboard: %+v", d)
		}
	})
}

func TestReportUseCase_MyPlan(t *testing.T) {
	m, uc := newReportUseCase(t)
	m.assoc.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Associate{ID: "a-1", PlanID: "p-old", DueDate: at(2024, 3, 13, 0)}, nil)
	m.plans.EXPECT().GetByID(gomock.Any(), "p-old").Return(entities.Plan{ID: "p-old", Name: "Antigo", Active: false}, nil)

	p, err := uc.MyPlan(context.Background(), testReseller)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Plan.Name != "Antigo" || p.DaysLeft != 3 || p.Due.State != entities.DueStateExpiringSoon {
		t.Fatalf("unexpected plan view: %+v", p)
	}
}
