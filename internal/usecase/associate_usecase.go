package usecase

//go:generate mockgen -source=associate_usecase.go -destination=../adapter/http/handlers/mocks/associate_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase/interfaces"
	"painel_master/pkg/format"

	"golang.org/x/sync/errgroup"
)

const generatedPasswordLength = 8

var (
	ErrAssociateNotFound       = errors.New("associate not found")
	ErrAssociateFieldsRequired = errors.New("nome, usuario, plano_id and data_vencimento are required")
	ErrUsernameTaken           = errors.New("username already in use")
	ErrInvalidDueDate          = errors.New("data_vencimento must be YYYY-MM-DD")
	ErrPlanInactive            = errors.New("plan is no longer offered")
)

type AssociateInput struct {
	Name     string
	Username string
	PlanID   string
	DueDate  string
}

// AssociateSettings are copied onto every new associate.
type AssociateSettings struct {
	ClientURL            string
	WebhookGeneratePix   string
	WebhookCheckPayment  string
	WebhookCheckTransfer string
}

type AssociateView struct {
	Associate entities.Associate
	PlanName  string
	Due       entities.DueStatus
}

type AssociateCreated struct {
	Associate      entities.Associate
	Password       string
	WelcomeMessage string
}

type IAssociateUseCase interface {
	List(ctx context.Context) ([]AssociateView, error)
	Create(ctx context.Context, in AssociateInput) (AssociateCreated, error)
	Update(ctx context.Context, id string, in AssociateInput) (entities.Associate, error)
	Delete(ctx context.Context, id string) error
	AccessMessage(ctx context.Context, id string) (string, error)
}

type AssociateUseCase struct {
	repo     interfaces.IAssociateRepository
	planRepo interfaces.IPlanRepository
	hasher   interfaces.IPasswordHasher
	settings AssociateSettings
	loc      *time.Location
	now      func() time.Time
}

var _ IAssociateUseCase = (*AssociateUseCase)(nil)

func NewAssociateUseCase(repo interfaces.IAssociateRepository, planRepo interfaces.IPlanRepository, hasher interfaces.IPasswordHasher, settings AssociateSettings, loc *time.Location) *AssociateUseCase {
	return &AssociateUseCase{repo: repo, planRepo: planRepo, hasher: hasher, settings: settings, loc: loc, now: time.Now}
}

// List returns associates newest first with their plan name and due status.
func (u *AssociateUseCase) List(ctx context.Context) ([]AssociateView, error) {
	var (
		associates []entities.Associate
		plans      []entities.Plan
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		associates, err = u.repo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		plans, err = u.planRepo.ListActive(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[associate][usecase] list failed err=%v", err)
		return nil, err
	}

	names, err := u.planNames(ctx, plans, associates)
	if err != nil {
		return nil, err
	}
	today := entities.Today(u.now(), u.loc)
	out := make([]AssociateView, 0, len(associates))
	for _, a := range associates {
		out = append(out, AssociateView{
			Associate: a,
			PlanName:  names[a.PlanID],
			Due:       entities.ClassifyDueDate(a.DueDate, today),
		})
	}
	return out, nil
}

// planNames resolves plan names for every associate, fetching the inactive
// plans the active listing leaves out.
func (u *AssociateUseCase) planNames(ctx context.Context, active []entities.Plan, associates []entities.Associate) (map[string]string, error) {
	names := make(map[string]string, len(active))
	for _, p := range active {
		names[p.ID] = p.Name
	}
	for _, a := range associates {
		if a.PlanID == "" {
			continue
		}
		if _, ok := names[a.PlanID]; ok {
			continue
		}
		p, err := u.planRepo.GetByID(ctx, a.PlanID)
		if err != nil {
			return nil, err
		}
		names[a.PlanID] = p.Name
	}
	return names, nil
}

func (u *AssociateUseCase) Create(ctx context.Context, in AssociateInput) (AssociateCreated, error) {
	in, due, err := normalizeAssociateInput(in)
	if err != nil {
		return AssociateCreated{}, err
	}
	if err := u.ensureUsernameFree(ctx, in.Username, ""); err != nil {
		return AssociateCreated{}, err
	}
	plan, err := u.plan(ctx, in.PlanID)
	if err != nil {
		return AssociateCreated{}, err
	}
	if !plan.Active {
		return AssociateCreated{}, ErrPlanInactive
	}

	password, err := format.RandomPassword(generatedPasswordLength)
	if err != nil {
		return AssociateCreated{}, err
	}
	stored, err := u.hasher.Hash(password)
	if err != nil {
		return AssociateCreated{}, err
	}

	a, err := u.repo.Create(ctx, entities.Associate{
		Name:                 in.Name,
		Username:             in.Username,
		PlanID:               plan.ID,
		DueDate:              due,
		Price:                plan.Price,
		Password:             stored,
		FirstAccess:          true,
		WebhookGeneratePix:   u.settings.WebhookGeneratePix,
		WebhookCheckPayment:  u.settings.WebhookCheckPayment,
		WebhookCheckTransfer: u.settings.WebhookCheckTransfer,
	})
	if err != nil {
		log.Printf("[associate][usecase] create failed username=%s err=%v", in.Username, err)
		return AssociateCreated{}, err
	}
	log.Printf("[associate][usecase] created id=%s username=%s plan_id=%s", a.ID, a.Username, a.PlanID)

	return AssociateCreated{
		Associate:      a,
		Password:       password,
		WelcomeMessage: u.welcomeMessage(a, plan, password),
	}, nil
}

// Update edits the profile and re-snapshots the plan price. The password is
// never touched here.
func (u *AssociateUseCase) Update(ctx context.Context, id string, in AssociateInput) (entities.Associate, error) {
	in, due, err := normalizeAssociateInput(in)
	if err != nil {
		return entities.Associate{}, err
	}
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Associate{}, err
	}
	if current.ID == "" {
		return entities.Associate{}, ErrAssociateNotFound
	}
	if err := u.ensureUsernameFree(ctx, in.Username, id); err != nil {
		return entities.Associate{}, err
	}
	plan, err := u.plan(ctx, in.PlanID)
	if err != nil {
		return entities.Associate{}, err
	}
	// Associates already on a retired plan stay editable.
	if !plan.Active && plan.ID != current.PlanID {
		return entities.Associate{}, ErrPlanInactive
	}

	current.Name = in.Name
	current.Username = in.Username
	current.PlanID = plan.ID
	current.DueDate = due
	current.Price = plan.Price
	a, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Associate{}, err
	}
	if a.ID == "" {
		return entities.Associate{}, ErrAssociateNotFound
	}
	log.Printf("[associate][usecase] updated id=%s", a.ID)
	return a, nil
}

func (u *AssociateUseCase) Delete(ctx context.Context, id string) error {
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAssociateNotFound
	}
	log.Printf("[associate][usecase] deleted id=%s", id)
	return nil
}

// AccessMessage rebuilds the credentials text an administrator shares with a
// reseller. Hashed passwords cannot be shown and are replaced by a notice.
func (u *AssociateUseCase) AccessMessage(ctx context.Context, id string) (string, error) {
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if a.ID == "" {
		return "", ErrAssociateNotFound
	}
	plan, err := u.planRepo.GetByID(ctx, a.PlanID)
	if err != nil {
		return "", err
	}
	password := a.Password
	if u.hasher.IsHashed(password) {
		password = "(definida pelo associado)"
	}

	planName := plan.Name
	if planName == "" {
		planName = "-"
	}
	var b strings.Builder
	b.WriteString("🎉 *Seus dados de acesso:*\n\n")
	fmt.Fprintf(&b, "👤 Usuário: *%s*\n", a.Username)
	fmt.Fprintf(&b, "🔐 Senha: *%s*\n\n", password)
	fmt.Fprintf(&b, "📋 *Plano:* %s\n", planName)
	fmt.Fprintf(&b, "💰 *Valor:* %s\n", format.Money(a.Price))
	fmt.Fprintf(&b, "📅 *Vencimento:* %s\n\n", format.Date(a.DueDate))
	b.WriteString("🔗 *Acesse seu painel:*\n")
	b.WriteString(u.panelURL(a.Username) + "\n\n")
	b.WriteString("Qualquer dúvida, estou à disposição! 😊")
	return b.String(), nil
}

func (u *AssociateUseCase) welcomeMessage(a entities.Associate, plan entities.Plan, password string) string {
	var b strings.Builder
	b.WriteString("🎉 *Bem-vindo ao Sistema!*\n\n")
	b.WriteString("👤 *Seus dados de acesso:*\n\n")
	fmt.Fprintf(&b, "📧 Usuário: *%s*\n", a.Username)
	fmt.Fprintf(&b, "🔐 Senha: *%s*\n\n", password)
	fmt.Fprintf(&b, "📋 *Plano:* %s\n", plan.Name)
	fmt.Fprintf(&b, "💰 *Valor:* %s\n", format.Money(plan.Price))
	fmt.Fprintf(&b, "📅 *Vencimento:* %s\n\n", format.Date(a.DueDate))
	b.WriteString("🔗 *Acesse seu painel:*\n")
	b.WriteString(u.panelURL(a.Username) + "\n\n")
	b.WriteString("⚠️ _No primeiro acesso, você deverá trocar sua senha._\n\n")
	b.WriteString("Qualquer dúvida, estou à disposição! 😊")
	return b.String()
}

func (u *AssociateUseCase) panelURL(username string) string {
	return u.settings.ClientURL + username + "/"
}

func (u *AssociateUseCase) plan(ctx context.Context, id string) (entities.Plan, error) {
	p, err := u.planRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Plan{}, err
	}
	if p.ID == "" {
		return entities.Plan{}, ErrPlanNotFound
	}
	return p, nil
}

func (u *AssociateUseCase) ensureUsernameFree(ctx context.Context, username, selfID string) error {
	existing, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing.ID != "" && existing.ID != selfID {
		return ErrUsernameTaken
	}
	return nil
}

func normalizeAssociateInput(in AssociateInput) (AssociateInput, time.Time, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Username = NormalizeUsername(in.Username)
	in.PlanID = strings.TrimSpace(in.PlanID)
	in.DueDate = strings.TrimSpace(in.DueDate)
	if in.Name == "" || in.Username == "" || in.PlanID == "" || in.DueDate == "" {
		return in, time.Time{}, ErrAssociateFieldsRequired
	}
	due, err := entities.ParseCivilDate(in.DueDate)
	if err != nil {
		return in, time.Time{}, ErrInvalidDueDate
	}
	return in, due, nil
}

// NormalizeUsername lower-cases a handle and strips every whitespace rune.
func NormalizeUsername(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}
