package interfaces

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_mock.go -package=mock_interfaces

import "context"

// INotifier posts a JSON payload to an administrator-configured URL.
type INotifier interface {
	Notify(ctx context.Context, url string, payload any) error
}
