package usecase

//go:generate mockgen -source=renewal_usecase.go -destination=../adapter/http/handlers/mocks/renewal_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

var (
	ErrRenewalNotFound   = errors.New("renewal not found")
	ErrRenewalNotPending = errors.New("renewal is not pending")
	ErrPlanPriceMissing  = errors.New("the associate's plan has no price")
	ErrDueDateMissing    = errors.New("the associate has no valid due date")
)

// RenewalView is a pending renewal joined with its associate and plan.
type RenewalView struct {
	entities.Renewal
	AssociateName     string    `json:"associado_nome"`
	AssociateUsername string    `json:"associado_usuario"`
	PlanName          string    `json:"plano_nome"`
	CurrentDueDate    time.Time `json:"vencimento_atual"`
}

type RenewalRequested struct {
	Renewal entities.Renewal
	Charge  entities.PixCharge
}

type RenewalApproved struct {
	Renewal    entities.Renewal
	NewDueDate time.Time
}

type IRenewalUseCase interface {
	Request(ctx context.Context, identity entities.Identity) (RenewalRequested, error)
	ListPending(ctx context.Context) ([]RenewalView, error)
	Verify(ctx context.Context, id string) (VerifiedTransaction, error)
	Approve(ctx context.Context, id string) (RenewalApproved, error)
}

type RenewalUseCase struct {
	repo          interfaces.IRenewalRepository
	associateRepo interfaces.IAssociateRepository
	planRepo      interfaces.IPlanRepository
	configRepo    interfaces.IConfigurationRepository
	gateway       interfaces.IPaymentGateway
	now           func() time.Time
}

var _ IRenewalUseCase = (*RenewalUseCase)(nil)

func NewRenewalUseCase(
	repo interfaces.IRenewalRepository,
	associateRepo interfaces.IAssociateRepository,
	planRepo interfaces.IPlanRepository,
	configRepo interfaces.IConfigurationRepository,
	gateway interfaces.IPaymentGateway,
) *RenewalUseCase {
	return &RenewalUseCase{
		repo:          repo,
		associateRepo: associateRepo,
		planRepo:      planRepo,
		configRepo:    configRepo,
		gateway:       gateway,
		now:           time.Now,
	}
}

// Request charges the reseller its plan price with the administrator's key
// and records a pending renewal for that charge.
func (u *RenewalUseCase) Request(ctx context.Context, identity entities.Identity) (RenewalRequested, error) {
	if !identity.IsReseller() {
		return RenewalRequested{}, ErrIdentityRequired
	}
	a, err := u.associateRepo.GetByID(ctx, identity.ID)
	if err != nil {
		return RenewalRequested{}, err
	}
	if a.ID == "" {
		return RenewalRequested{}, ErrAssociateNotFound
	}
	p, err := u.planRepo.GetByID(ctx, a.PlanID)
	if err != nil {
		return RenewalRequested{}, err
	}
	if p.ID == "" {
		return RenewalRequested{}, ErrPlanNotFound
	}
	if p.Price <= 0 {
		return RenewalRequested{}, ErrPlanPriceMissing
	}
	cfg, err := u.configRepo.GetAll(ctx)
	if err != nil {
		return RenewalRequested{}, err
	}
	apiKey := cfg.Get(entities.ConfigAPIKey)
	if apiKey == "" {
		return RenewalRequested{}, ErrAPIKeyNotConfigured
	}

	charge, err := u.gateway.GenerateCharge(ctx, "Renovação - "+a.Name, p.Price, apiKey)
	if err != nil {
		log.Printf("[renewal][usecase] charge failed associate_id=%s err=%v", a.ID, err)
		return RenewalRequested{}, err
	}
	r, err := u.repo.Create(ctx, entities.Renewal{
		AssociateID: a.ID,
		ChargeID:    charge.ChargeID,
		Amount:      p.Price,
		Status:      entities.RenewalStatusPending,
		CreatedAt:   u.now(),
	})
	if err != nil {
		return RenewalRequested{}, err
	}
	log.Printf("[renewal][usecase] requested renewal_id=%s associate_id=%s pix_id=%s", r.ID, a.ID, charge.ChargeID)
	return RenewalRequested{Renewal: r, Charge: charge}, nil
}

func (u *RenewalUseCase) ListPending(ctx context.Context) ([]RenewalView, error) {
	var (
		renewals   []entities.Renewal
		associates []entities.Associate
		plans      []entities.Plan
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		renewals, err = u.repo.ListPending(gctx)
		return err
	})
	g.Go(func() (err error) {
		associates, err = u.associateRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		plans, err = u.planRepo.ListActive(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]entities.Associate, len(associates))
	for _, a := range associates {
		byID[a.ID] = a
	}
	planNames := make(map[string]string, len(plans))
	for _, p := range plans {
		planNames[p.ID] = p.Name
	}

	out := make([]RenewalView, 0, len(renewals))
	for _, r := range renewals {
		v := RenewalView{Renewal: r, AssociateName: "-", AssociateUsername: "-", PlanName: "-"}
		if a, ok := byID[r.AssociateID]; ok {
			v.AssociateName = a.Name
			v.AssociateUsername = a.Username
			v.CurrentDueDate = a.DueDate
			if name, ok := planNames[a.PlanID]; ok {
				v.PlanName = name
			}
		}
		out = append(out, v)
	}
	return out, nil
}

// Verify checks the renewal charge with the administrator's key.
func (u *RenewalUseCase) Verify(ctx context.Context, id string) (VerifiedTransaction, error) {
	r, err := u.getRenewal(ctx, id)
	if err != nil {
		return VerifiedTransaction{}, err
	}
	cfg, err := u.configRepo.GetAll(ctx)
	if err != nil {
		return VerifiedTransaction{}, err
	}
	check, err := u.gateway.VerifyTransaction(ctx, r.ChargeID, cfg.Get(entities.ConfigAPIKey))
	if err != nil {
		return VerifiedTransaction{}, err
	}
	return VerifiedTransaction{Transaction: check, Status: entities.NormalizeStatus(check.Status)}, nil
}

// Approve settles the renewal and pushes the due date one calendar month.
// The renewal is flipped first under a pending guard, so a repeated approval
// cannot advance the due date twice; a failed due-date write puts it back
// to pending.
func (u *RenewalUseCase) Approve(ctx context.Context, id string) (RenewalApproved, error) {
	r, err := u.getRenewal(ctx, id)
	if err != nil {
		return RenewalApproved{}, err
	}
	if !r.IsPending() {
		return RenewalApproved{}, ErrRenewalNotPending
	}
	a, err := u.associateRepo.GetByID(ctx, r.AssociateID)
	if err != nil {
		return RenewalApproved{}, err
	}
	if a.ID == "" {
		return RenewalApproved{}, ErrAssociateNotFound
	}
	if a.DueDate.IsZero() {
		log.Printf("[renewal][usecase] approve without due date renewal_id=%s associate_id=%s", r.ID, a.ID)
		return RenewalApproved{}, ErrDueDateMissing
	}

	paid, ok, err := u.repo.MarkPaid(ctx, r.ID, u.now())
	if err != nil {
		return RenewalApproved{}, err
	}
	if !ok {
		log.Printf("[renewal][usecase] approve lost race renewal_id=%s", r.ID)
		return RenewalApproved{}, ErrRenewalNotPending
	}

	due := entities.AddMonths(a.DueDate, 1)
	if _, err := u.associateRepo.UpdateDueDate(ctx, a.ID, due); err != nil {
		log.Printf("[renewal][usecase] due date update failed renewal_id=%s err=%v", r.ID, err)
		if rerr := u.repo.RevertToPending(ctx, r.ID); rerr != nil {
			log.Printf("[renewal][usecase] revert failed renewal_id=%s err=%v", r.ID, rerr)
			return RenewalApproved{}, fmt.Errorf("update due date: %w (revert failed: %v)", err, rerr)
		}
		return RenewalApproved{}, fmt.Errorf("update due date: %w", err)
	}

	log.Printf("[renewal][usecase] approved renewal_id=%s associate_id=%s due=%s", r.ID, a.ID, entities.FormatCivilDate(due))
	return RenewalApproved{Renewal: paid, NewDueDate: due}, nil
}

func (u *RenewalUseCase) getRenewal(ctx context.Context, id string) (entities.Renewal, error) {
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Renewal{}, err
	}
	if r.ID == "" {
		return entities.Renewal{}, ErrRenewalNotFound
	}
	return r, nil
}
