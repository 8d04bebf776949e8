package session

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/chm-desk/helpdesk/internal/config"
	"github.com/chm-desk/helpdesk/internal/domain"
	apperrors "github.com/chm-desk/helpdesk/pkg/util"
)

// Manager owns the single operator session. Login accepts any non-empty
// email; the operator profile comes from configuration with the submitted
// email attached.
type Manager struct {
	mu      sync.RWMutex
	cfg     config.SessionConfig
	tokens  *TokenManager
	logger  *zap.Logger
	current *domain.Operator
}

// NewManager constructs the session manager.
func NewManager(cfg config.SessionConfig, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		cfg:    cfg,
		tokens: NewTokenManager(cfg.JWTSecret, cfg.TokenTTLMinutes),
		logger: logger,
	}
}

// Login establishes the operator identity and issues a session token.
func (m *Manager) Login(email string) (*domain.Operator, string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, "", apperrors.NewValidationError("email required", nil)
	}

	operator := &domain.Operator{
		ID:     m.cfg.OperatorID,
		Name:   m.cfg.OperatorName,
		Email:  email,
		Role:   domain.OperatorRole(m.cfg.OperatorRole),
		Avatar: m.cfg.OperatorAvatar,
	}

	token, _, err := m.tokens.Issue(operator)
	if err != nil {
		return nil, "", apperrors.NewInternalError(err)
	}

	m.mu.Lock()
	m.current = operator
	m.mu.Unlock()

	m.logger.Info("operator logged in", zap.String("email", email))
	return operator, token, nil
}

// Logout destroys the session.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	m.logger.Info("operator logged out")
}

// Current returns a copy of the logged-in operator, or nil.
func (m *Manager) Current() *domain.Operator {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	copied := *m.current
	return &copied
}

// Tokens exposes the token manager for the HTTP middleware.
func (m *Manager) Tokens() *TokenManager {
	return m.tokens
}
