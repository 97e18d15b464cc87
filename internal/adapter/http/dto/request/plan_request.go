package request

import (
	"strings"

	"painel_master/internal/usecase"
)

type PlanRequest struct {
	Name        string  `json:"nome" binding:"required"`
	Price       float64 `json:"valor" binding:"required"`
	Description string  `json:"descricao"`
}

func (r PlanRequest) ToInput() usecase.PlanInput {
	return usecase.PlanInput{
		Name:        strings.TrimSpace(r.Name),
		Price:       r.Price,
		Description: strings.TrimSpace(r.Description),
	}
}
