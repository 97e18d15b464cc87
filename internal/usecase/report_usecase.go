package usecase

//go:generate mockgen -source=report_usecase.go -destination=../adapter/http/handlers/mocks/report_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"sort"
	"time"

	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase/interfaces"
	"painel_master/pkg/format"

	"golang.org/x/sync/errgroup"
)

const (
	unknownReseller     = "Desconhecido"
	recentAssociates    = 5
	monthOptionsDefault = 6
)

var ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

type Commission struct {
	ChargeID     string    `json:"id_transacao"`
	ClientName   string    `json:"cliente"`
	ResellerName string    `json:"revendedor"`
	GrossAmount  float64   `json:"valor_bruto"`
	Commission   float64   `json:"comissao"`
	Date         time.Time `json:"data"`
}

type CommissionReport struct {
	Items []Commission
	Total float64
	Count int
}

type ResellerSummary struct {
	AssociateID string  `json:"id"`
	Name        string  `json:"nome"`
	Username    string  `json:"usuario"`
	SalesCount  int     `json:"qtd_vendas"`
	TotalSold   float64 `json:"total_vendido"`
}

type MonthlySummary struct {
	Month      string
	Label      string
	Resellers  []ResellerSummary
	TotalSold  float64
	SalesCount int
}

type RecentAssociate struct {
	entities.Associate
	PlanName string             `json:"plano_nome"`
	Due      entities.DueStatus `json:"vencimento"`
}

// Dashboard carries the admin or the reseller figures; reseller dashboards
// leave the admin-only fields zero.
type Dashboard struct {
	ActiveAssociates  int               `json:"associados_ativos"`
	ExpiredAssociates int               `json:"associados_vencidos"`
	PaidSalesCount    int               `json:"vendas_pagas"`
	TotalSales        float64           `json:"total_vendas"`
	Commissions       float64           `json:"comissoes"`
	RecentAssociates  []RecentAssociate `json:"associados_recentes,omitempty"`
}

type MyPlan struct {
	Associate entities.Associate `json:"associado"`
	Plan      entities.Plan      `json:"plano"`
	Due       entities.DueStatus `json:"vencimento"`
	DaysLeft  int                `json:"dias_restantes"`
}

type IReportUseCase interface {
	Commissions(ctx context.Context) (CommissionReport, error)
	MonthlySummary(ctx context.Context, month string) (MonthlySummary, error)
	Months(n int) []format.MonthOption
	Dashboard(ctx context.Context, identity entities.Identity) (Dashboard, error)
	MyPlan(ctx context.Context, identity entities.Identity) (MyPlan, error)
}

type ReportUseCase struct {
	associateRepo interfaces.IAssociateRepository
	planRepo      interfaces.IPlanRepository
	logRepo       interfaces.IPixLogRepository
	loc           *time.Location
	now           func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(associateRepo interfaces.IAssociateRepository, planRepo interfaces.IPlanRepository, logRepo interfaces.IPixLogRepository, loc *time.Location) *ReportUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportUseCase{associateRepo: associateRepo, planRepo: planRepo, logRepo: logRepo, loc: loc, now: time.Now}
}

// Commissions lists 1% of every paid reseller sale.
func (u *ReportUseCase) Commissions(ctx context.Context) (CommissionReport, error) {
	var (
		logs       []entities.PixLog
		associates []entities.Associate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		logs, err = u.logRepo.ListResellerLogs(gctx)
		return err
	})
	g.Go(func() (err error) {
		associates, err = u.associateRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return CommissionReport{}, err
	}

	names := make(map[string]string, len(associates))
	for _, a := range associates {
		names[a.ID] = a.Name
	}

	items := make([]Commission, 0, len(logs))
	values := make([]float64, 0, len(logs))
	for _, l := range logs {
		if !l.IsPaid() {
			continue
		}
		name, ok := names[l.AssociateID]
		if !ok {
			name = unknownReseller
		}
		client := l.ClientName
		if client == "" {
			client = "-"
		}
		c := entities.Commission(l.Amount)
		items = append(items, Commission{
			ChargeID:     l.ChargeID,
			ClientName:   client,
			ResellerName: name,
			GrossAmount:  l.Amount,
			Commission:   c,
			Date:         l.CreatedAt,
		})
		values = append(values, c)
	}
	return CommissionReport{Items: items, Total: entities.Sum(values...), Count: len(items)}, nil
}

// MonthlySummary totals paid sales per reseller for a YYYY-MM bucket. Every
// associate is listed, including those without sales, ordered by total sold
// with ties kept in listing order.
func (u *ReportUseCase) MonthlySummary(ctx context.Context, month string) (MonthlySummary, error) {
	start, end, err := format.MonthRange(month, u.loc)
	if err != nil {
		return MonthlySummary{}, ErrInvalidMonth
	}

	var (
		associates []entities.Associate
		logs       []entities.PixLog
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		associates, err = u.associateRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		logs, err = u.logRepo.ListPaidBetween(gctx, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return MonthlySummary{}, err
	}

	index := make(map[string]int, len(associates))
	rows := make([]ResellerSummary, 0, len(associates))
	amounts := make([][]float64, len(associates))
	for i, a := range associates {
		index[a.ID] = i
		rows = append(rows, ResellerSummary{AssociateID: a.ID, Name: a.Name, Username: a.Username})
	}
	for _, l := range logs {
		i, ok := index[l.AssociateID]
		if !ok || !l.IsPaid() || l.CreatedAt.Before(start) || l.CreatedAt.After(end) {
			continue
		}
		rows[i].SalesCount++
		amounts[i] = append(amounts[i], l.Amount)
	}

	totals := make([]float64, 0, len(rows))
	count := 0
	for i := range rows {
		rows[i].TotalSold = entities.Sum(amounts[i]...)
		totals = append(totals, rows[i].TotalSold)
		count += rows[i].SalesCount
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalSold > rows[j].TotalSold })

	return MonthlySummary{
		Month:      month,
		Label:      format.MonthLabel(start),
		Resellers:  rows,
		TotalSold:  entities.Sum(totals...),
		SalesCount: count,
	}, nil
}

func (u *ReportUseCase) Months(n int) []format.MonthOption {
	if n <= 0 {
		n = monthOptionsDefault
	}
	return format.Months(u.now().In(u.loc), n)
}

func (u *ReportUseCase) Dashboard(ctx context.Context, identity entities.Identity) (Dashboard, error) {
	if !identity.IsAdmin() {
		logs, err := u.logRepo.ListByAssociate(ctx, identity.ID)
		if err != nil {
			return Dashboard{}, err
		}
		count, total := paidTotals(logs)
		return Dashboard{PaidSalesCount: count, TotalSales: total}, nil
	}

	var (
		associates []entities.Associate
		plans      []entities.Plan
		logs       []entities.PixLog
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		associates, err = u.associateRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		plans, err = u.planRepo.ListActive(gctx)
		return err
	})
	g.Go(func() (err error) {
		logs, err = u.logRepo.ListResellerLogs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	today := entities.Today(u.now(), u.loc)
	planNames := make(map[string]string, len(plans))
	for _, p := range plans {
		planNames[p.ID] = p.Name
	}

	var d Dashboard
	for i, a := range associates {
		if entities.DaysUntil(a.DueDate, today) >= 0 {
			d.ActiveAssociates++
		} else {
			d.ExpiredAssociates++
		}
		if i < recentAssociates {
			name, ok := planNames[a.PlanID]
			if !ok {
				name = "-"
			}
			d.RecentAssociates = append(d.RecentAssociates, RecentAssociate{
				Associate: a,
				PlanName:  name,
				Due:       entities.ClassifyDueDate(a.DueDate, today),
			})
		}
	}
	d.PaidSalesCount, d.TotalSales = paidTotals(logs)
	d.Commissions = entities.Commission(d.TotalSales)
	return d, nil
}

// MyPlan resolves the reseller's plan even when it has been deactivated.
func (u *ReportUseCase) MyPlan(ctx context.Context, identity entities.Identity) (MyPlan, error) {
	if !identity.IsReseller() {
		return MyPlan{}, ErrIdentityRequired
	}
	a, err := u.associateRepo.GetByID(ctx, identity.ID)
	if err != nil {
		return MyPlan{}, err
	}
	if a.ID == "" {
		return MyPlan{}, ErrAssociateNotFound
	}
	p, err := u.planRepo.GetByID(ctx, a.PlanID)
	if err != nil {
		return MyPlan{}, err
	}
	today := entities.Today(u.now(), u.loc)
	due := entities.ClassifyDueDate(a.DueDate, today)
	return MyPlan{Associate: a, Plan: p, Due: due, DaysLeft: due.DaysLeft}, nil
}

func paidTotals(logs []entities.PixLog) (int, float64) {
	values := make([]float64, 0, len(logs))
	for _, l := range logs {
		if l.IsPaid() {
			values = append(values, l.Amount)
		}
	}
	return len(values), entities.Sum(values...)
}
