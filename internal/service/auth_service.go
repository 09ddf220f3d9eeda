package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/acest-fitness/gym-service/internal/auth"
	"github.com/acest-fitness/gym-service/internal/domain"
	"github.com/acest-fitness/gym-service/internal/events"
)

// ErrLoginThrottled is returned when a username has too many recent failures.
var ErrLoginThrottled = errors.New("too many failed login attempts")

// AuthService coordinates login and token verification.
type AuthService struct {
	verifier   auth.CredentialVerifier
	tokenMgr   *auth.TokenManager
	limiter    auth.LoginLimiter
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	Verifier     auth.CredentialVerifier
	TokenManager *auth.TokenManager
	Limiter      auth.LoginLimiter
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewAuthService builds the service. Limiter, Dispatcher and Logger are optional.
func NewAuthService(deps AuthDependencies) *AuthService {
	s := &AuthService{
		verifier:   deps.Verifier,
		tokenMgr:   deps.TokenManager,
		limiter:    deps.Limiter,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
	if s.limiter == nil {
		s.limiter = auth.NoopLimiter{}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Login verifies the credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, username, password, remoteIP string) (string, domain.Token, error) {
	allowed, err := s.limiter.Allow(ctx, username)
	if err != nil {
		// limiter outages must not lock everyone out
		s.logger.Warn("login limiter unavailable", zap.Error(err))
		allowed = true
	}
	if !allowed {
		s.publish(ctx, events.EventLoginThrottled, username, events.LoginPayload{RemoteIP: remoteIP})
		return "", domain.Token{}, ErrLoginThrottled
	}

	identity, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		if recErr := s.limiter.RecordFailure(ctx, username); recErr != nil {
			s.logger.Warn("record login failure", zap.Error(recErr))
		}
		s.publish(ctx, events.EventLoginFailed, username, events.LoginPayload{RemoteIP: remoteIP})
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return "", domain.Token{}, auth.ErrInvalidCredentials
		}
		return "", domain.Token{}, err
	}

	token, meta, err := s.tokenMgr.GenerateToken(identity)
	if err != nil {
		return "", domain.Token{}, err
	}

	if err := s.limiter.Reset(ctx, username); err != nil {
		s.logger.Warn("reset login failures", zap.Error(err))
	}
	s.publish(ctx, events.EventLoginSucceeded, identity.Username, events.LoginPayload{RemoteIP: remoteIP, TokenID: meta.ID})
	return token, meta, nil
}

// Greeting is the message shown to an authorized caller.
func (s *AuthService) Greeting(identity domain.Identity) string {
	return "Hello, " + identity.Username + ". You are authorized!"
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, username string, payload events.LoginPayload) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Username:  username,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish auth event", zap.String("type", string(eventType)), zap.Error(err))
	}
}
