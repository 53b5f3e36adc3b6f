package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("default expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "")
		cfg, err := NewJWTConfig()
		require.NoError(t, err)
		assert.Equal(t, "test-secret", cfg.Secret)
		assert.Equal(t, 24, cfg.ExpirationHours)
	})

	t.Run("explicit expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "72")
		cfg, err := NewJWTConfig()
		require.NoError(t, err)
		assert.Equal(t, 72, cfg.ExpirationHours)
	})

	t.Run("invalid expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "soon")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("zero expiration rejected", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "0")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})
}

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name     string
		cost     string
		wantCost int
		wantErr  bool
	}{
		{"default cost", "", 12, false},
		{"minimum cost", "10", 10, false},
		{"maximum cost", "14", 14, false},
		{"below minimum", "9", 0, true},
		{"above maximum", "15", 0, true},
		{"non numeric", "heavy", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.cost)
			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, cfg.VerifyPassword("hunter22", hash))
	assert.False(t, cfg.VerifyPassword("hunter23", hash))
}

func TestPasswordConfig_PepperChangesVerification(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "global-secret"}
	plain := &PasswordConfig{BcryptCost: 10}

	hash, err := peppered.HashPassword("hunter22")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("hunter22", hash))
	// Without the pepper the same password must fail.
	assert.False(t, plain.VerifyPassword("hunter22", hash))
}
