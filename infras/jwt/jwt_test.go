package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"bookme/config"
	"bookme/infras/jwt"
)

const testSecret = "test-secret"

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = testSecret

	return jwt.New(cfg)
}

func signToken(t *testing.T, secret string, claims gojwt.MapClaims) string {
	t.Helper()

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)

	return signed
}

func TestValidateToken(t *testing.T) {
	svc := newService()

	t.Run("valid token yields the principal", func(t *testing.T) {
		token := signToken(t, testSecret, gojwt.MapClaims{
			"user_id": "cust-1",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		claims, err := svc.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "cust-1", claims.UserID)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token := signToken(t, testSecret, gojwt.MapClaims{
			"user_id": "cust-1",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})

		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong signature is rejected", func(t *testing.T) {
		token := signToken(t, "other-secret", gojwt.MapClaims{
			"user_id": "cust-1",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("Token abc")
	assert.Error(t, err)
}
