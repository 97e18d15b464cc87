package repository

import (
	"context"

	"painel_master/internal/domain/entities"
	"painel_master/internal/infrastructure/rowstore"
	"painel_master/internal/usecase/interfaces"
)

type planItem struct {
	ID          string  `mapstructure:"id,omitempty"`
	Name        string  `mapstructure:"nome"`
	Price       float64 `mapstructure:"valor"`
	Description string  `mapstructure:"descricao"`
	Active      bool    `mapstructure:"ativo"`
	CreatedAt   string  `mapstructure:"created_at,omitempty"`
}

type PlanRepository struct {
	store rowstore.RowStore
	table string
}

var _ interfaces.IPlanRepository = (*PlanRepository)(nil)

func NewPlanRepository(store rowstore.RowStore, table string) *PlanRepository {
	return &PlanRepository{store: store, table: table}
}

func (r *PlanRepository) ListActive(ctx context.Context) ([]entities.Plan, error) {
	rows, err := r.store.Select(ctx, r.table, rowstore.Query{
		Filters: []rowstore.Filter{rowstore.Eq("ativo", true)},
		OrderBy: "created_at",
		Desc:    true,
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Plan, 0, len(rows))
	for _, row := range rows {
		p, err := decodePlan(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// GetByID also resolves inactive plans.
func (r *PlanRepository) GetByID(ctx context.Context, id string) (entities.Plan, error) {
	rows, err := r.store.Select(ctx, r.table, rowstore.Query{
		Filters: []rowstore.Filter{rowstore.Eq("id", id)},
		Limit:   1,
	})
	if err != nil {
		return entities.Plan{}, err
	}
	if len(rows) == 0 {
		return entities.Plan{}, nil
	}
	return decodePlan(rows[0])
}

func (r *PlanRepository) Create(ctx context.Context, p entities.Plan) (entities.Plan, error) {
	row, err := encodeItem(planItem{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Active:      p.Active,
	})
	if err != nil {
		return entities.Plan{}, err
	}
	created, err := r.store.Insert(ctx, r.table, row)
	if err != nil {
		return entities.Plan{}, err
	}
	return decodePlan(created)
}

func (r *PlanRepository) Update(ctx context.Context, p entities.Plan) (entities.Plan, error) {
	rows, err := r.store.Update(ctx, r.table, []rowstore.Filter{rowstore.Eq("id", p.ID)}, rowstore.Row{
		"nome":      p.Name,
		"valor":     p.Price,
		"descricao": p.Description,
	})
	if err != nil {
		return entities.Plan{}, err
	}
	if len(rows) == 0 {
		return entities.Plan{}, nil
	}
	return decodePlan(rows[0])
}

func (r *PlanRepository) Deactivate(ctx context.Context, id string) (bool, error) {
	rows, err := r.store.Update(ctx, r.table, []rowstore.Filter{rowstore.Eq("id", id)}, rowstore.Row{"ativo": false})
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

func decodePlan(row rowstore.Row) (entities.Plan, error) {
	var it planItem
	if err := decodeRow(row, &it); err != nil {
		return entities.Plan{}, err
	}
	return entities.Plan{
		ID:          it.ID,
		Name:        it.Name,
		Price:       it.Price,
		Description: it.Description,
		Active:      it.Active,
		CreatedAt:   parseTimestamp(it.CreatedAt),
	}, nil
}
