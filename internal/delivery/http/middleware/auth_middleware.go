package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"devconnect/internal/pkg/token"
)

const CtxUserIDKey = "user_id"

// AuthMiddleware is the gate on private routes: a missing or invalid bearer
// token short-circuits with 401 before any handler or store access.
type AuthMiddleware struct {
	tokens token.Service
}

func NewAuthMiddleware(tokens token.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		tok, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, fiber.Map{"error": "Unauthorized"}, nil)
		}

		claims, err := m.tokens.Validate(tok)
		if err != nil {
			if errors.Is(err, token.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, fiber.Map{"error": "Token expired"}, err)
			}
			return NewAppError(fiber.StatusUnauthorized, fiber.Map{"error": "Invalid token"}, err)
		}

		c.Locals(CtxUserIDKey, claims.UserID)

		return c.Next()
	}
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}

	return tok, true
}
