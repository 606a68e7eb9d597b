package service

import (
	"context"

	"developer-service/internal/domain/entity"
	"developer-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AuditService interface {
	LogCreate(ctx context.Context, actorID *string, action string, developerID int, newValue interface{}) error
	LogUpdate(ctx context.Context, actorID *string, action string, developerID int, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, actorID *string, action string, developerID int, oldValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, actorID *string, action string, developerID int, newValue interface{}) error {
	return s.write(ctx, actorID, action, developerID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, actorID *string, action string, developerID int, oldValue, newValue interface{}) error {
	return s.write(ctx, actorID, action, developerID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, actorID *string, action string, developerID int, oldValue interface{}) error {
	return s.write(ctx, actorID, action, developerID, oldValue, nil)
}

func (s *auditService) write(ctx context.Context, actorID *string, action string, developerID int, oldValue, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		ActorID:     actorID,
		Action:      action,
		DeveloperID: developerID,
		Metadata: entity.JSON{
			"entity":    "developer",
			"entity_id": developerID,
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
