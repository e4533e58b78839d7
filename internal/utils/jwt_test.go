// internal/utils/jwt_test.go
package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
)

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")
	defer SetJWTSecret("")

	userID := uuid.New()
	token, err := GenerateJWT(userID, models.RoleAdmin, "admin@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestJWTExpiredToken(t *testing.T) {
	SetJWTSecret("test-secret")
	defer SetJWTSecret("")

	token, err := GenerateJWT(uuid.New(), models.RoleUser, "user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestJWTNoSecret(t *testing.T) {
	SetJWTSecret("")

	_, err := GenerateJWT(uuid.New(), models.RoleUser, "user@example.com", time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)

	_, err = ValidateJWT("whatever")
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestJWTTamperedToken(t *testing.T) {
	SetJWTSecret("test-secret")
	defer SetJWTSecret("")

	token, err := GenerateJWT(uuid.New(), models.RoleUser, "user@example.com", time.Hour)
	require.NoError(t, err)

	SetJWTSecret("different-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
