package entities

import "time"

// Plan is a subscription tier. Deleting a plan only flips Active so that
// associates created on it keep resolving its name.
type Plan struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	Price       float64   `json:"valor"`
	Description string    `json:"descricao"`
	Active      bool      `json:"ativo"`
	CreatedAt   time.Time `json:"created_at"`
}
