package session

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/chm-desk/helpdesk/internal/domain"
	apperrors "github.com/chm-desk/helpdesk/pkg/util"
)

const operatorKey = "session_operator"

// Middleware extracts the operator identity from bearer tokens. Requests
// without a token proceed with no identity; ticket operations then author
// messages with the fallback system identity.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle attaches the operator from a valid bearer token, if present.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Next()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.Parse(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(operatorKey, &domain.Operator{
		ID:    claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	})
	return c.Next()
}

// OperatorFromContext retrieves the authenticated operator.
func OperatorFromContext(c *fiber.Ctx) (*domain.Operator, bool) {
	val := c.Locals(operatorKey)
	if val == nil {
		return nil, false
	}
	operator, ok := val.(*domain.Operator)
	return operator, ok
}
