package middleware

import (
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"vecino-activo/config/common"
	"vecino-activo/dto/res"
	"vecino-activo/security"
)

type Middleware struct {
	*common.Config
	*security.JWT
	Log *logrus.Logger
}

func NewMiddleware(config *common.Config, jwt *security.JWT, logger *logrus.Logger) *Middleware {
	return &Middleware{Config: config, JWT: jwt, Log: logger}
}

func (middleware *Middleware) JWTProtected(c *fiber.Ctx) error {
	secretKey := middleware.GetJwtConfig()

	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: secretKey},
		ContextKey: "jwt",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			middleware.Log.WithError(err).Warn("Failed to validate JWT")
			return ctx.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
				Error: "Token is not valid",
			})
		},
	})(c)
}

// ExtractUser parses the bearer token into Claims and stores them on the
// request. Runs after JWTProtected, so the token is already signature-checked.
func (middleware *Middleware) ExtractUser(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
	claims, err := middleware.JWT.VerifyToken(token)
	if err != nil {
		middleware.Log.WithError(err).Warn("Failed to extract claims from token")
		return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
			Error: "Token is not valid",
		})
	}
	c.Locals("claims", claims)
	return c.Next()
}
