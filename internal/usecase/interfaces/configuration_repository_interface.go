package interfaces

//go:generate mockgen -source=configuration_repository_interface.go -destination=mocks/configuration_repository_mock.go -package=mock_interfaces

import (
	"context"

	"painel_master/internal/domain/entities"
)

// IConfigurationRepository reads and writes the global key/value settings.
type IConfigurationRepository interface {
	GetAll(ctx context.Context) (entities.Configuration, error)
	Set(ctx context.Context, key, value string) error
}
