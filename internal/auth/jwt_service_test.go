package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken("user-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)

	// Tokens never expire: no exp claim is issued, only iat.
	assert.Nil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestJWTService_ValidateToken_Rejections(t *testing.T) {
	service := NewJWTService("test-secret")

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "malformed token",
			token: func(t *testing.T) string {
				return "not-a-token"
			},
		},
		{
			name: "empty token",
			token: func(t *testing.T) string {
				return ""
			},
		},
		{
			name: "signed with a different secret",
			token: func(t *testing.T) string {
				other := NewJWTService("other-secret")
				token, err := other.GenerateToken("user-123")
				assert.NoError(t, err)
				return token
			},
		},
		{
			name: "unsigned token",
			token: func(t *testing.T) string {
				unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-123"})
				token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
				assert.NoError(t, err)
				return token
			},
		},
		{
			name: "valid signature but no user id claim",
			token: func(t *testing.T) string {
				empty := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{})
				token, err := empty.SignedString([]byte("test-secret"))
				assert.NoError(t, err)
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token(t))
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
