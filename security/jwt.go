package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vecino-activo/apperr"
	"vecino-activo/config/common"
	"vecino-activo/entity"
)

const tokenValidity = 7 * 24 * time.Hour

// Claims is the identity a token carries. It is embedded in every signed
// token and attached to realtime sends, so a message can be attributed
// without a user lookup.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

type JWT struct {
	config *common.Config
}

func NewJWT(config *common.Config) *JWT {
	return &JWT{config: config}
}

func (j *JWT) GenerateToken(user *entity.User) (string, error) {
	secretKey := j.config.GetJwtConfig()

	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "vecino-activo",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenValidity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (j *JWT) VerifyToken(token string) (*Claims, error) {
	secretKey := j.config.GetJwtConfig()

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secretKey, nil
	})

	if err != nil || !parsed.Valid {
		return nil, apperr.ErrInvalidToken
	}

	return claims, nil
}
