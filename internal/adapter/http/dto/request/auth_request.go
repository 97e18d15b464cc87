package request

import "strings"

type LoginRequest struct {
	Username string `json:"usuario" binding:"required"`
	Password string `json:"senha" binding:"required"`
}

// Credentials trims the handle only; passwords are compared as typed.
func (r LoginRequest) Credentials() (string, string) {
	return strings.TrimSpace(r.Username), r.Password
}

type ChangePasswordRequest struct {
	Current string `json:"senha_atual"`
	New     string `json:"nova_senha"`
	Confirm string `json:"confirmar_senha"`
}
