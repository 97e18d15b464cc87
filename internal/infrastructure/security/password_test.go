package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_Cleartext(t *testing.T) {
	h := NewPasswordHasher(false)
	stored, err := h.Hash("segredo1")
	require.NoError(t, err)
	assert.Equal(t, "segredo1", stored)
	assert.True(t, h.Verify(stored, "segredo1"))
	assert.False(t, h.Verify(stored, "segredo2"))
	assert.False(t, h.Verify("", ""))
}

func TestPasswordHasher_Bcrypt(t *testing.T) {
	h := NewPasswordHasher(true)
	stored, err := h.Hash("segredo1")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo1", stored)
	assert.True(t, h.IsHashed(stored))
	assert.False(t, h.IsHashed("segredo1"))
	assert.True(t, h.Verify(stored, "segredo1"))
	assert.False(t, h.Verify(stored, "outra"))

	// legacy cleartext rows keep working after hashing is switched on
	assert.True(t, h.Verify("antiga", "antiga"))
}
