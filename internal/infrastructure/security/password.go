package security

import (
	"crypto/subtle"
	"strings"

	"painel_master/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher writes bcrypt hashes when hashing is enabled and always
// accepts both bcrypt hashes and the legacy cleartext rows.
type PasswordHasher struct {
	hash bool
}

var _ interfaces.IPasswordHasher = (*PasswordHasher)(nil)

func NewPasswordHasher(hash bool) *PasswordHasher {
	return &PasswordHasher{hash: hash}
}

func (h *PasswordHasher) Hash(plain string) (string, error) {
	if !h.hash {
		return plain, nil
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *PasswordHasher) Verify(stored, plain string) bool {
	if stored == "" {
		return false
	}
	if isBcrypt(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1
}

func (h *PasswordHasher) IsHashed(stored string) bool {
	return isBcrypt(stored)
}

func isBcrypt(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
