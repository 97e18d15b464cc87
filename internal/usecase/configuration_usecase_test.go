package usecase

import (
	"context"
	"errors"
	"testing"

	"painel_master/internal/domain/entities"
	mock_interfaces "painel_master/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestConfigurationUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
	uc := NewConfigurationUseCase(repo, nil)

	repo.EXPECT().GetAll(gomock.Any()).Return(entities.Configuration{
		entities.ConfigAdminPassword: "secret",
		entities.ConfigAPIKey:        "key",
	}, nil)

	cfg, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cfg[entities.ConfigAdminPassword]; ok {
		t.Fatalf("admin password must never be exposed")
	}
	if cfg.Get(entities.ConfigPixKeyType) != "cpf" || cfg.Get(entities.ConfigAPIKey) != "key" {
		t.Fatalf("unexpected configuration: %+v", cfg)
	}
}

func TestConfigurationUseCase_UpdatePayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
	uc := NewConfigurationUseCase(repo, nil)

	gomock.InOrder(
		repo.EXPECT().Set(gomock.Any(), entities.ConfigPixKeyType, "email").Return(nil),
		repo.EXPECT().Set(gomock.Any(), entities.ConfigPixKey, "a@b.c").Return(nil),
		repo.EXPECT().Set(gomock.Any(), entities.ConfigPixBeneficiary, "Dono").Return(nil),
		repo.EXPECT().Set(gomock.Any(), entities.ConfigPayoutWallet, "lq1xyz").Return(errors.New("db")),
	)

	err := uc.UpdatePayout(context.Background(), PayoutSettings{PixKeyType: "email", PixKey: " a@b.c ", Beneficiary: "Dono", Wallet: "lq1xyz"})
	if err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestConfigurationUseCase_ResellerAPIKey(t *testing.T) {
	reseller := entities.Identity{ID: "a-1", Role: entities.RoleReseller}

	t.Run("required", func(t *testing.T) {
		uc := NewConfigurationUseCase(nil, nil)
		if err := uc.UpdateResellerAPIKey(context.Background(), reseller, "  "); !errors.Is(err, ErrAPIKeyRequired) {
			t.Fatalf("expected ErrAPIKeyRequired, got %v", err)
		}
	})

	t.Run("update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assoc := mock_interfaces.NewMockIAssociateRepository(ctrl)
		uc := NewConfigurationUseCase(nil, assoc)

		assoc.EXPECT().UpdateAPIKey(gomock.Any(), "a-1", "k-1").Return(entities.Associate{ID: "a-1", APIKey: "k-1"}, nil)
		if err := uc.UpdateResellerAPIKey(context.Background(), reseller, " k-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("get missing associate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assoc := mock_interfaces.NewMockIAssociateRepository(ctrl)
		uc := NewConfigurationUseCase(nil, assoc)

		assoc.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Associate{}, nil)
		if _, err := uc.GetResellerAPIKey(context.Background(), reseller); !errors.Is(err, ErrAssociateNotFound) {
			t.Fatalf("expected ErrAssociateNotFound, got %v", err)
		}
	})
}
