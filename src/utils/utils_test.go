package utils

import (
	"errors"
	"testing"
	"time"

	"admission-backend/src/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateJWT(secret, "staff-1", "office@example.com", "admissions", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "staff-1", claims.UserID)
	assert.Equal(t, "admissions", claims.Role)
	assert.Equal(t, "staff-1", claims.Subject)
}

func TestParseJWTRejects(t *testing.T) {
	secret := []byte("test-secret")
	expired, err := GenerateJWT(secret, "staff-1", "", "admissions", -time.Minute)
	require.NoError(t, err)
	valid, err := GenerateJWT(secret, "staff-1", "", "admissions", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret []byte
	}{
		{"empty", "", secret},
		{"garbage", "not.a.token", secret},
		{"expired", expired, secret},
		{"wrong secret", valid, []byte("other")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJWT(tt.token, tt.secret)
			assert.Error(t, err)
		})
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, StatusOf(apperrors.NotFound("x")))
	assert.Equal(t, fiber.StatusUnprocessableEntity, StatusOf(apperrors.Validation("x")))
	assert.Equal(t, fiber.StatusBadRequest, StatusOf(apperrors.BadRequest("x")))
	assert.Equal(t, fiber.StatusConflict, StatusOf(apperrors.Conflict("x")))
	assert.Equal(t, fiber.StatusBadGateway, StatusOf(apperrors.Upstream(errors.New("down"), "")))
	assert.Equal(t, fiber.StatusBadGateway, StatusOf(errors.New("anything else")))
}
