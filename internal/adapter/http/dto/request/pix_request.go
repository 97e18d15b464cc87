package request

type ChargeRequest struct {
	ClientName string  `json:"cliente"`
	Amount     float64 `json:"valor"`
}
