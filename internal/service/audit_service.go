package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/acest-fitness/gym-service/internal/events"
)

// AuditService records authentication events in the structured log.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger.Named("audit"),
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventLoginSucceeded, a.handleLoginSucceeded)
	a.dispatcher.Subscribe(events.EventLoginFailed, a.handleLoginFailed)
	a.dispatcher.Subscribe(events.EventLoginThrottled, a.handleLoginThrottled)
}

func (a *AuditService) handleLoginSucceeded(_ context.Context, event events.Event) error {
	a.logger.Info("LoginSucceeded", eventFields(event)...)
	return nil
}

func (a *AuditService) handleLoginFailed(_ context.Context, event events.Event) error {
	a.logger.Warn("LoginFailed", eventFields(event)...)
	return nil
}

func (a *AuditService) handleLoginThrottled(_ context.Context, event events.Event) error {
	a.logger.Warn("LoginThrottled", eventFields(event)...)
	return nil
}

func eventFields(event events.Event) []zap.Field {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("username", event.Username),
		zap.Time("at", event.Timestamp),
	}
	if p, ok := event.Payload.(events.LoginPayload); ok {
		if p.RemoteIP != "" {
			fields = append(fields, zap.String("remote_ip", p.RemoteIP))
		}
		if p.TokenID != "" {
			fields = append(fields, zap.String("token_id", p.TokenID))
		}
	}
	return fields
}
