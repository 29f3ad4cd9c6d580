package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	service := &JWTService{}

	token, err := service.GenerateJWT(42, false, time.Now().Add(time.Hour))
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.False(t, claims.IsAdmin)
}

func TestGenerateJWT_AdminClaim(t *testing.T) {
	service := &JWTService{}

	token, err := service.GenerateJWT(7, true, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestValidateToken_Invalid(t *testing.T) {
	service := &JWTService{}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage token", "not-a-token"},
		{"empty token", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestValidateToken_Expired(t *testing.T) {
	service := &JWTService{}

	token, err := service.GenerateJWT(42, false, time.Now().Add(-time.Hour))
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
