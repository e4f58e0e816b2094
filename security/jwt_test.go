package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecino-activo/config/common"
	"vecino-activo/entity"
)

func testConfig(t *testing.T) *common.Config {
	t.Helper()
	v := viper.New()
	v.Set("JWT_SECRET", "test-secret")
	return &common.Config{Viper: v}
}

func TestTokenRoundTrip(t *testing.T) {
	j := NewJWT(testConfig(t))

	user := &entity.User{
		Name:  "Maria Soto",
		Email: "maria@example.com",
	}
	user.ID = "user-1"

	token, err := j.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "maria@example.com", claims.Email)
	assert.Equal(t, "Maria Soto", claims.Name)
	assert.WithinDuration(t, time.Now().Add(tokenValidity), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	cfg := testConfig(t)
	j := NewJWT(cfg)

	claims := Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.GetJwtConfig())
	require.NoError(t, err)

	_, err = j.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
	j := NewJWT(testConfig(t))

	user := &entity.User{Email: "maria@example.com"}
	user.ID = "user-1"
	token, err := j.GenerateToken(user)
	require.NoError(t, err)

	other := viper.New()
	other.Set("JWT_SECRET", "another-secret")
	_, err = NewJWT(&common.Config{Viper: other}).VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	j := NewJWT(testConfig(t))
	_, err := j.VerifyToken("not-a-token")
	assert.Error(t, err)
}
