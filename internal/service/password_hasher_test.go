package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	// Arrange
	hasher := NewPasswordHasher(bcrypt.MinCost)

	// Act
	hash, err := hasher.Hash("purple-monkey-dinosaur")

	// Assert
	require.NoError(t, err)
	assert.NotEqual(t, "purple-monkey-dinosaur", hash)

	ok, err := hasher.Compare(hash, "purple-monkey-dinosaur")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Compare(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_CorruptedHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	_, err := hasher.Compare("not-a-bcrypt-hash", "password")

	assert.Error(t, err)
}

func TestPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(100)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

// TestPasswordHasher_LongPassword проверяет пароли длиннее лимита bcrypt
func TestPasswordHasher_LongPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "73 bytes", password: strings.Repeat("a", 73)},
		{name: "1000 bytes", password: strings.Repeat("пароль", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			hasher := NewPasswordHasher(bcrypt.MinCost)

			// Act
			hash, err := hasher.Hash(tt.password)

			// Assert
			require.NoError(t, err)

			ok, err := hasher.Compare(hash, tt.password)
			require.NoError(t, err)
			assert.True(t, ok)

			// Отличие после 72-го байта тоже учитывается
			ok, err = hasher.Compare(hash, tt.password+"x")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}
