package usecase

//go:generate mockgen -source=auth_usecase.go -destination=../adapter/http/handlers/mocks/auth_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"log"
	"strings"

	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase/interfaces"
)

const MinPasswordLength = 6

var (
	ErrMissingCredentials     = errors.New("username and password are required")
	ErrInvalidCredentials     = errors.New("invalid username or password")
	ErrPasswordFieldsRequired = errors.New("current, new and confirmation passwords are required")
	ErrPasswordMismatch       = errors.New("new password and confirmation do not match")
	ErrPasswordTooShort       = errors.New("new password must have at least 6 characters")
	ErrWrongCurrentPassword   = errors.New("current password is incorrect")
	ErrIdentityRequired       = errors.New("authenticated identity required")
)

// IAuthUseCase resolves who is logging in and lets them rotate their password.
//
// The administrator's credentials live in configuration; resellers log in
// with their associate handle. The administrator is tried first.
type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (entities.Identity, error)
	ChangePassword(ctx context.Context, identity entities.Identity, current, next, confirm string) (entities.IdentityPatch, error)
}

type AuthUseCase struct {
	configRepo    interfaces.IConfigurationRepository
	associateRepo interfaces.IAssociateRepository
	hasher        interfaces.IPasswordHasher
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(configRepo interfaces.IConfigurationRepository, associateRepo interfaces.IAssociateRepository, hasher interfaces.IPasswordHasher) *AuthUseCase {
	return &AuthUseCase{configRepo: configRepo, associateRepo: associateRepo, hasher: hasher}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (entities.Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.Identity{}, ErrMissingCredentials
	}

	cfg, err := u.configRepo.GetAll(ctx)
	if err != nil {
		log.Printf("[auth][usecase] failed loading configuration err=%v", err)
		return entities.Identity{}, err
	}
	if admin := cfg.Get(entities.ConfigAdminUser); admin != "" && admin == username &&
		u.hasher.Verify(cfg.Get(entities.ConfigAdminPassword), password) {
		log.Printf("[auth][usecase] admin login username=%s", username)
		return entities.Identity{
			ID:       entities.AdminIdentityID,
			Username: username,
			Name:     cfg.AdminName(),
			Role:     entities.RoleAdmin,
		}, nil
	}

	a, err := u.associateRepo.GetByUsername(ctx, username)
	if err != nil {
		log.Printf("[auth][usecase] failed loading associate username=%s err=%v", username, err)
		return entities.Identity{}, err
	}
	if a.ID == "" || !u.hasher.Verify(a.Password, password) {
		log.Printf("[auth][usecase] invalid credentials username=%s", username)
		return entities.Identity{}, ErrInvalidCredentials
	}
	log.Printf("[auth][usecase] reseller login associate_id=%s", a.ID)
	return a.Identity(), nil
}

// ChangePassword verifies the current secret and stores the new one. For a
// reseller the first-access flag is cleared; the returned patch is what the
// session must merge.
func (u *AuthUseCase) ChangePassword(ctx context.Context, identity entities.Identity, current, next, confirm string) (entities.IdentityPatch, error) {
	if identity.IsZero() {
		return entities.IdentityPatch{}, ErrIdentityRequired
	}
	if current == "" || next == "" || confirm == "" {
		return entities.IdentityPatch{}, ErrPasswordFieldsRequired
	}
	if next != confirm {
		return entities.IdentityPatch{}, ErrPasswordMismatch
	}
	if len(next) < MinPasswordLength {
		return entities.IdentityPatch{}, ErrPasswordTooShort
	}

	if identity.IsAdmin() {
		cfg, err := u.configRepo.GetAll(ctx)
		if err != nil {
			return entities.IdentityPatch{}, err
		}
		if !u.hasher.Verify(cfg.Get(entities.ConfigAdminPassword), current) {
			return entities.IdentityPatch{}, ErrWrongCurrentPassword
		}
		stored, err := u.hasher.Hash(next)
		if err != nil {
			return entities.IdentityPatch{}, err
		}
		if err := u.configRepo.Set(ctx, entities.ConfigAdminPassword, stored); err != nil {
			log.Printf("[auth][usecase] failed storing admin password err=%v", err)
			return entities.IdentityPatch{}, err
		}
		log.Printf("[auth][usecase] admin password changed")
		return entities.IdentityPatch{}, nil
	}

	a, err := u.associateRepo.GetByID(ctx, identity.ID)
	if err != nil {
		return entities.IdentityPatch{}, err
	}
	if a.ID == "" || !u.hasher.Verify(a.Password, current) {
		return entities.IdentityPatch{}, ErrWrongCurrentPassword
	}
	stored, err := u.hasher.Hash(next)
	if err != nil {
		return entities.IdentityPatch{}, err
	}
	if _, err := u.associateRepo.UpdatePassword(ctx, a.ID, stored, false); err != nil {
		log.Printf("[auth][usecase] failed storing password associate_id=%s err=%v", a.ID, err)
		return entities.IdentityPatch{}, err
	}
	log.Printf("[auth][usecase] password changed associate_id=%s", a.ID)
	firstAccess := false
	return entities.IdentityPatch{FirstAccess: &firstAccess}, nil
}
