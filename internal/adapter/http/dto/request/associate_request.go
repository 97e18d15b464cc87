package request

import (
	"strings"

	"painel_master/internal/usecase"
)

type AssociateRequest struct {
	Name     string `json:"nome" binding:"required"`
	Username string `json:"usuario" binding:"required"`
	PlanID   string `json:"plano_id" binding:"required"`
	DueDate  string `json:"data_vencimento" binding:"required"`
}

func (r AssociateRequest) ToInput() usecase.AssociateInput {
	return usecase.AssociateInput{
		Name:     strings.TrimSpace(r.Name),
		Username: strings.TrimSpace(r.Username),
		PlanID:   strings.TrimSpace(r.PlanID),
		DueDate:  strings.TrimSpace(r.DueDate),
	}
}
