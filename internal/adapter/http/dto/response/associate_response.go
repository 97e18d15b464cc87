package response

import (
	"time"

	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase"
)

type AssociateResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"nome"`
	Username    string              `json:"usuario"`
	PlanID      string              `json:"plano_id"`
	PlanName    string              `json:"plano_nome,omitempty"`
	DueDate     string              `json:"data_vencimento"`
	Price       float64             `json:"valor"`
	FirstAccess bool                `json:"primeiro_acesso"`
	Due         *entities.DueStatus `json:"vencimento,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

func FromAssociate(a entities.Associate) AssociateResponse {
	return AssociateResponse{
		ID:          a.ID,
		Name:        a.Name,
		Username:    a.Username,
		PlanID:      a.PlanID,
		DueDate:     entities.FormatCivilDate(a.DueDate),
		Price:       a.Price,
		FirstAccess: a.FirstAccess,
		CreatedAt:   a.CreatedAt,
	}
}

func FromAssociateViews(views []usecase.AssociateView) []AssociateResponse {
	out := make([]AssociateResponse, 0, len(views))
	for _, v := range views {
		r := FromAssociate(v.Associate)
		r.PlanName = v.PlanName
		due := v.Due
		r.Due = &due
		out = append(out, r)
	}
	return out
}

type AssociateCreatedResponse struct {
	Associate      AssociateResponse `json:"associado"`
	Password       string            `json:"senha"`
	WelcomeMessage string            `json:"mensagem"`
}

func FromAssociateCreated(c usecase.AssociateCreated) AssociateCreatedResponse {
	return AssociateCreatedResponse{
		Associate:      FromAssociate(c.Associate),
		Password:       c.Password,
		WelcomeMessage: c.WelcomeMessage,
	}
}

type MessageResponse struct {
	Message string `json:"mensagem"`
}
