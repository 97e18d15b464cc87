package interfaces

//go:generate mockgen -source=bill_payment_repository_interface.go -destination=mocks/bill_payment_repository_mock.go -package=mock_interfaces

import (
	"context"

	"painel_master/internal/domain/entities"
)

// IBillPaymentRepository persists bill-payment requests.
//
// UpdateStatus writes only the administrator-owned fields and only when the
// stored status still equals from; ok is false otherwise.
type IBillPaymentRepository interface {
	Create(ctx context.Context, r entities.BillPaymentRequest) (entities.BillPaymentRequest, error)
	GetByID(ctx context.Context, id string) (entities.BillPaymentRequest, error)
	ListByAssociate(ctx context.Context, associateID string) ([]entities.BillPaymentRequest, error)
	List(ctx context.Context) ([]entities.BillPaymentRequest, error)
	UpdateStatus(ctx context.Context, id string, from entities.BillPaymentStatus, u entities.BillPaymentUpdate) (updated entities.BillPaymentRequest, ok bool, err error)
}
