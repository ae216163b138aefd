package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/guestlist/internal/auth"
	"github.com/mmynk/guestlist/pkg/api"
	"github.com/mmynk/guestlist/pkg/api/apiconnect"
)

// Ensure AuthService implements the Connect handler interface
var _ apiconnect.AuthServiceHandler = (*AuthService)(nil)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Login checks the host password and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	s.logger.Info("Login request")

	if req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	if err := s.authenticator.Authenticate(ctx, req.Msg.Password); err != nil {
		s.logger.Warn("Login failed", "error", err)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return nil, connect.NewError(connect.CodeUnauthenticated, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, expiresAt, err := s.jwtManager.Generate(auth.HostSubject)
	if err != nil {
		s.logger.Error("Failed to generate token", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Host logged in", "expires_at", expiresAt)
	return connect.NewResponse(&api.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}), nil
}
