package usecase

//go:generate mockgen -source=configuration_usecase.go -destination=../adapter/http/handlers/mocks/configuration_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"log"
	"strings"

	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase/interfaces"
)

var ErrAPIKeyRequired = errors.New("api key is required")

type IntegrationSettings struct {
	APIKey              string
	NotificationWebhook string
}

// PayoutSettings is where resellers send funds for bill payments.
type PayoutSettings struct {
	PixKeyType  string
	PixKey      string
	Beneficiary string
	Wallet      string
}

type IConfigurationUseCase interface {
	Get(ctx context.Context) (entities.Configuration, error)
	UpdateIntegration(ctx context.Context, in IntegrationSettings) error
	UpdatePayout(ctx context.Context, in PayoutSettings) error
	GetResellerAPIKey(ctx context.Context, identity entities.Identity) (string, error)
	UpdateResellerAPIKey(ctx context.Context, identity entities.Identity, apiKey string) error
}

type ConfigurationUseCase struct {
	repo          interfaces.IConfigurationRepository
	associateRepo interfaces.IAssociateRepository
}

var _ IConfigurationUseCase = (*ConfigurationUseCase)(nil)

func NewConfigurationUseCase(repo interfaces.IConfigurationRepository, associateRepo interfaces.IAssociateRepository) *ConfigurationUseCase {
	return &ConfigurationUseCase{repo: repo, associateRepo: associateRepo}
}

// Get returns every setting except the administrator password.
func (u *ConfigurationUseCase) Get(ctx context.Context) (entities.Configuration, error) {
	cfg, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	public := cfg.Public()
	if public.Get(entities.ConfigPixKeyType) == "" {
		public[entities.ConfigPixKeyType] = "cpf"
	}
	return public, nil
}

func (u *ConfigurationUseCase) UpdateIntegration(ctx context.Context, in IntegrationSettings) error {
	return u.setAll(ctx, []setting{
		{entities.ConfigAPIKey, in.APIKey},
		{entities.ConfigNotificationWebhook, in.NotificationWebhook},
	})
}

func (u *ConfigurationUseCase) UpdatePayout(ctx context.Context, in PayoutSettings) error {
	return u.setAll(ctx, []setting{
		{entities.ConfigPixKeyType, in.PixKeyType},
		{entities.ConfigPixKey, in.PixKey},
		{entities.ConfigPixBeneficiary, in.Beneficiary},
		{entities.ConfigPayoutWallet, in.Wallet},
	})
}

func (u *ConfigurationUseCase) GetResellerAPIKey(ctx context.Context, identity entities.Identity) (string, error) {
	a, err := u.associateRepo.GetByID(ctx, identity.ID)
	if err != nil {
		return "", err
	}
	if a.ID == "" {
		return "", ErrAssociateNotFound
	}
	return a.APIKey, nil
}

func (u *ConfigurationUseCase) UpdateResellerAPIKey(ctx context.Context, identity entities.Identity, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return ErrAPIKeyRequired
	}
	a, err := u.associateRepo.UpdateAPIKey(ctx, identity.ID, apiKey)
	if err != nil {
		return err
	}
	if a.ID == "" {
		return ErrAssociateNotFound
	}
	log.Printf("[config][usecase] reseller api key updated associate_id=%s", a.ID)
	return nil
}

type setting struct {
	key, value string
}

func (u *ConfigurationUseCase) setAll(ctx context.Context, settings []setting) error {
	for _, s := range settings {
		if err := u.repo.Set(ctx, s.key, strings.TrimSpace(s.value)); err != nil {
			log.Printf("[config][usecase] set failed key=%s err=%v", s.key, err)
			return err
		}
	}
	log.Printf("[config][usecase] settings saved count=%d", len(settings))
	return nil
}
