package commands

import (
	"context"
	"errors"
	"log/slog"

	"flute-live-api/internal/pkg/clock"
	"flute-live-api/internal/pkg/errs"
	"flute-live-api/internal/pkg/jwt"
	"flute-live-api/internal/pkg/password"
)

var (
	// ErrAuthNotConfigured means no admin credential is set server-side.
	// Handlers surface it as a generic 5xx; the cause stays in the log.
	ErrAuthNotConfigured  = errs.New("admin credential not configured")
	ErrInvalidCredentials = errs.New("invalid credentials")
)

type AuthResult struct {
	Token string
}

type AuthCommands interface {
	Authenticate(ctx context.Context, candidate string) (*AuthResult, error)
}

type authCommandsImpl struct {
	checker password.Checker
	tokens  *jwt.Service
	clock   clock.Clock
	logger  *slog.Logger
}

func NewAuthCommands(checker password.Checker, tokens *jwt.Service, clk clock.Clock, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		checker: checker,
		tokens:  tokens,
		clock:   clk,
		logger:  logger,
	}
}

func (c *authCommandsImpl) Authenticate(_ context.Context, candidate string) (*AuthResult, error) {
	if err := c.checker.Check(candidate); err != nil {
		if errors.Is(err, password.ErrNotConfigured) {
			c.logger.Error("admin password not configured")
			return nil, errs.Mark(err, ErrAuthNotConfigured)
		}
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := c.tokens.GenerateAdminToken(c.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue admin token")
	}

	return &AuthResult{Token: token}, nil
}
