package core

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/elynrose/gpt-cells-app-sub001/internal/db"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
	"github.com/elynrose/gpt-cells-app-sub001/pkg/messagequeue"
)

// auditService implements the AuditService interface. Recording is
// best-effort: a failed audit write never fails the mutation it describes.
type auditService struct {
	auditRepo db.AuditRepository
	queue     messagequeue.MessageQueue
	queueName string
	logger    *zap.Logger
}

// NewAuditService creates a new AuditService instance.
func NewAuditService(auditRepo db.AuditRepository, queue messagequeue.MessageQueue, queueName string, logger *zap.Logger) AuditService {
	return &auditService{
		auditRepo: auditRepo,
		queue:     queue,
		queueName: queueName,
		logger:    logger,
	}
}

func (s *auditService) Record(ctx context.Context, event *models.AuditEvent) {
	if event == nil || event.Action == "" {
		return
	}

	if err := s.auditRepo.Create(ctx, event); err != nil {
		s.logger.Error("failed to persist audit event",
			zap.String("action", event.Action),
			zap.String("actorId", event.ActorID),
			zap.Error(err))
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn("failed to encode audit event for publishing", zap.Error(err))
		return
	}
	if err := s.queue.Publish(s.queueName, body); err != nil {
		s.logger.Warn("failed to publish audit event",
			zap.String("action", event.Action),
			zap.Error(err))
	}
}

func (s *auditService) ListRecent(ctx context.Context, limit int) ([]*models.AuditEvent, error) {
	events, err := s.auditRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	return events, nil
}
