package jwt_test

import (
	"calgrid/config"
	"calgrid/infras/jwt"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(expireMin int) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "calgrid"
	cfg.JWT.AccessSecret = "secret"
	cfg.JWT.AccessExpireMin = expireMin

	return cfg
}

func TestGenerateAndValidate(t *testing.T) {
	svc := jwt.New(newConfig(10))

	token, err := svc.GenerateToken("u1", "s1", "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "s1", claims.SalonID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "calgrid", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Failures(t *testing.T) {
	svc := jwt.New(newConfig(10))

	t.Run("expired", func(t *testing.T) {
		token, err := jwt.New(newConfig(-5)).GenerateToken("u1", "s1", "admin")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := newConfig(10)
		other.JWT.AccessSecret = "other"

		token, err := jwt.New(other).GenerateToken("u1", "s1", "admin")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing salon", func(t *testing.T) {
		token, err := svc.GenerateToken("u1", "", "admin")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
	})

	t.Run("unsigned", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"salon_id": "s1"}).
			SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, jwt.ErrMissingHeader)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.ErrorIs(t, err, jwt.ErrInvalidHeader)

	_, err = jwt.ExtractTokenFromHeader("Bearer ")
	assert.ErrorIs(t, err, jwt.ErrInvalidHeader)
}
