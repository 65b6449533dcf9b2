package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("BCRYPT_COST", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DefaultBcryptCost, cfg.BcryptCost)
}

func TestLoad_BcryptCostMustBePositive(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{name: "explicit cost", value: "12", expected: 12},
		{name: "zero falls back", value: "0", expected: DefaultBcryptCost},
		{name: "negative falls back", value: "-4", expected: DefaultBcryptCost},
		{name: "non-numeric falls back", value: "lots", expected: DefaultBcryptCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.value)

			cfg, err := Load()
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.BcryptCost)
		})
	}
}
