package usecase

//go:generate mockgen -source=plan_usecase.go -destination=../adapter/http/handlers/mocks/plan_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"log"
	"strings"

	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase/interfaces"
)

var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrPlanNameRequired = errors.New("plan name is required")
	ErrInvalidPlanPrice = errors.New("plan price must be greater than zero")
)

type PlanInput struct {
	Name        string
	Price       float64
	Description string
}

type IPlanUseCase interface {
	ListActive(ctx context.Context) ([]entities.Plan, error)
	Create(ctx context.Context, in PlanInput) (entities.Plan, error)
	Update(ctx context.Context, id string, in PlanInput) (entities.Plan, error)
	Delete(ctx context.Context, id string) error
}

type PlanUseCase struct {
	repo interfaces.IPlanRepository
}

var _ IPlanUseCase = (*PlanUseCase)(nil)

func NewPlanUseCase(repo interfaces.IPlanRepository) *PlanUseCase {
	return &PlanUseCase{repo: repo}
}

func (u *PlanUseCase) ListActive(ctx context.Context) ([]entities.Plan, error) {
	return u.repo.ListActive(ctx)
}

func (u *PlanUseCase) Create(ctx context.Context, in PlanInput) (entities.Plan, error) {
	in, err := validatePlanInput(in)
	if err != nil {
		return entities.Plan{}, err
	}
	p, err := u.repo.Create(ctx, entities.Plan{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Active:      true,
	})
	if err != nil {
		log.Printf("[plan][usecase] create failed name=%s err=%v", in.Name, err)
		return entities.Plan{}, err
	}
	log.Printf("[plan][usecase] created id=%s name=%s price=%.2f", p.ID, p.Name, p.Price)
	return p, nil
}

// Update changes a plan's terms. Associates keep the price snapshotted when
// they were created or last edited.
func (u *PlanUseCase) Update(ctx context.Context, id string, in PlanInput) (entities.Plan, error) {
	in, err := validatePlanInput(in)
	if err != nil {
		return entities.Plan{}, err
	}
	p, err := u.repo.Update(ctx, entities.Plan{ID: id, Name: in.Name, Price: in.Price, Description: in.Description})
	if err != nil {
		return entities.Plan{}, err
	}
	if p.ID == "" {
		return entities.Plan{}, ErrPlanNotFound
	}
	log.Printf("[plan][usecase] updated id=%s", p.ID)
	return p, nil
}

// Delete is a soft delete.
func (u *PlanUseCase) Delete(ctx context.Context, id string) error {
	ok, err := u.repo.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPlanNotFound
	}
	log.Printf("[plan][usecase] deactivated id=%s", id)
	return nil
}

func validatePlanInput(in PlanInput) (PlanInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" {
		return in, ErrPlanNameRequired
	}
	if in.Price <= 0 {
		return in, ErrInvalidPlanPrice
	}
	return in, nil
}
