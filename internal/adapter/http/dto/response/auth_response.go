package response

import "painel_master/internal/domain/entities"

type SessionResponse struct {
	User               entities.Identity `json:"usuario"`
	MustChangePassword bool              `json:"deve_alterar_senha"`
}

func FromIdentity(i entities.Identity) SessionResponse {
	return SessionResponse{User: i, MustChangePassword: i.IsReseller() && i.FirstAccess}
}
