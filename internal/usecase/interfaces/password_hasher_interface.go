package interfaces

//go:generate mockgen -source=password_hasher_interface.go -destination=mocks/password_hasher_mock.go -package=mock_interfaces

// IPasswordHasher hashes new credentials and verifies stored ones, which may
// be hashes or legacy cleartext.
type IPasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(stored, plain string) bool
	// IsHashed reports whether stored can no longer be shown back in clear.
	IsHashed(stored string) bool
}
