package usecase

import (
	"context"
	"errors"
	"testing"

	"painel_master/internal/domain/entities"
	mock_interfaces "painel_master/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newAuthMocks(t *testing.T) (*mock_interfaces.MockIConfigurationRepository, *mock_interfaces.MockIAssociateRepository, *mock_interfaces.MockIPasswordHasher, *AuthUseCase) {
	ctrl := gomock.NewController(t)
	cfg := mock_interfaces.NewMockIConfigurationRepository(ctrl)
	assoc := mock_interfaces.NewMockIAssociateRepository(ctrl)
	hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
	return cfg, assoc, hasher, NewAuthUseCase(cfg, assoc, hasher)
}

func TestAuthUseCase_Login(t *testing.T) {
	adminCfg := entities.Configuration{
		entities.ConfigAdminUser:     "admin",
		entities.ConfigAdminPassword: "secret",
		entities.ConfigAdminName:     "Dono",
	}

	t.Run("missing credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil)
		if _, err := uc.Login(context.Background(), "  ", "x"); !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("admin", func(t *testing.T) {
		cfg, _, hasher, uc := newAuthMocks(t)
		cfg.EXPECT().GetAll(gomock.Any()).Return(adminCfg, nil)
		hasher.EXPECT().Verify("secret", "secret").Return(true)

		id, err := uc.Login(context.Background(), "admin", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.ID != entities.AdminIdentityID || id.Role != entities.RoleAdmin || id.Name != "Dono" || id.Username != "admin" {
			t.Fatalf("unexpected identity: %+v", id)
		}
	})

	t.Run("admin wrong password falls through to resellers", func(t *testing.T) {
		cfg, assoc, hasher, uc := newAuthMocks(t)
		cfg.EXPECT().GetAll(gomock.Any()).Return(adminCfg, nil)
		hasher.EXPECT().Verify("secret", "nope").Return(false)
		assoc.EXPECT().GetByUsername(gomock.Any(), "admin").Return(entities.Associate{}, nil)

		if _, err := uc.Login(context.Background(), "admin", "nope"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("reseller", func(t *testing.T) {
		cfg, assoc, hasher, uc := newAuthMocks(t)
		cfg.EXPECT().GetAll(gomock.Any()).Return(entities.Configuration{}, nil)
		assoc.EXPECT().GetByUsername(gomock.Any(), "loja").Return(entities.Associate{
			ID: "a-1", Username: "loja", Name: "Loja", Password: "abc12345", FirstAccess: true, PlanID: "p-1",
		}, nil)
		hasher.EXPECT().Verify("abc12345", "abc12345").Return(true)

		id, err := uc.Login(context.Background(), " loja ", "abc12345")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.ID != "a-1" || id.Role != entities.RoleReseller || !id.FirstAccess || id.PlanID != "p-1" {
			t.Fatalf("unexpected identity: %+v", id)
		}
	})

	t.Run("reseller bad password", func(t *testing.T) {
		cfg, assoc, hasher, uc := newAuthMocks(t)
		cfg.EXPECT().GetAll(gomock.Any()).Return(entities.Configuration{}, nil)
		assoc.EXPECT().GetByUsername(gomock.Any(), "loja").Return(entities.Associate{ID: "a-1", Password: "x"}, nil)
		hasher.EXPECT().Verify("x", "y").Return(false)

		if _, err := uc.Login(context.Background(), "loja", "y"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("configuration error", func(t *testing.T) {
		cfg, _, _, uc := newAuthMocks(t)
		cfg.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Login(context.Background(), "loja", "y"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestAuthUseCase_ChangePassword(t *testing.T) {
	reseller := entities.Identity{ID: "a-1", Role: entities.RoleReseller}
	admin := entities.Identity{ID: entities.AdminIdentityID, Role: entities.RoleAdmin}

	validation := []struct {
		name                   string
		current, next, confirm string
		want                   error
	}{
		{"missing fields", "", "abcdef", "abcdef", ErrPasswordFieldsRequired},
		{"mismatch", "old", "abcdef", "abcdeg", ErrPasswordMismatch},
		{"too short", "old", "abc", "abc", ErrPasswordTooShort},
	}
	for _, tc := range validation {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewAuthUseCase(nil, nil, nil)
			if _, err := uc.ChangePassword(context.Background(), reseller, tc.current, tc.next, tc.confirm); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("anonymous", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil)
		if _, err := uc.ChangePassword(context.Background(), entities.Identity{}, "a", "b", "b"); !errors.Is(err, ErrIdentityRequired) {
			t.Fatalf("expected ErrIdentityRequired, got %v", err)
		}
	})

	t.Run("admin", func(t *testing.T) {
		cfg, _, hasher, uc := newAuthMocks(t)
		cfg.EXPECT().GetAll(gomock.Any()).Return(entities.Configuration{entities.ConfigAdminPassword: "old"}, nil)
		hasher.EXPECT().Verify("old", "old").Return(true)
		hasher.EXPECT().Hash("newpass").Return("newpass", nil)
		cfg.EXPECT().Set(gomock.Any(), entities.ConfigAdminPassword, "newpass").Return(nil)

		patch, err := uc.ChangePassword(context.Background(), admin, "old", "newpass", "newpass")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.FirstAccess != nil {
			t.Fatalf("admin patch should be empty: %+v", patch)
		}
	})

	t.Run("admin wrong current", func(t *testing.T) {
		cfg, _, hasher, uc := newAuthMocks(t)
		cfg.EXPECT().GetAll(gomock.Any()).Return(entities.Configuration{entities.ConfigAdminPassword: "old"}, nil)
		hasher.EXPECT().Verify("old", "bad").Return(false)

		if _, err := uc.ChangePassword(context.Background(), admin, "bad", "newpass", "newpass"); !errors.Is(err, ErrWrongCurrentPassword) {
			t.Fatalf("expected ErrWrongCurrentPassword, got %v", err)
		}
	})

	t.Run("reseller clears first access", func(t *testing.T) {
		_, assoc, hasher, uc := newAuthMocks(t)
		assoc.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Associate{ID: "a-1", Password: "old"}, nil)
		hasher.EXPECT().Verify("old", "old").Return(true)
		hasher.EXPECT().Hash("newpass").Return("$2a$hash", nil)
		assoc.EXPECT().UpdatePassword(gomock.Any(), "a-1", "$2a$hash", false).Return(entities.Associate{ID: "a-1"}, nil)

		patch, err := uc.ChangePassword(context.Background(), reseller, "old", "newpass", "newpass")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.FirstAccess == nil || *patch.FirstAccess {
			t.Fatalf("expected first access cleared, got %+v", patch)
		}
	})

	t.Run("reseller wrong current", func(t *testing.T) {
		_, assoc, hasher, uc := newAuthMocks(t)
		assoc.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Associate{ID: "a-1", Password: "old"}, nil)
		hasher.EXPECT().Verify("old", "bad").Return(false)

		if _, err := uc.ChangePassword(context.Background(), reseller, "bad", "newpass", "newpass"); !errors.Is(err, ErrWrongCurrentPassword) {
			t.Fatalf("expected ErrWrongCurrentPassword, got %v", err)
		}
	})
}
