package dto

import (
	"time"

	"developer-service/internal/domain/entity"
)

// Response DTOs

type AuditLogResponse struct {
	ID          int64       `json:"id"`
	ActorID     string      `json:"actorId,omitempty"`
	Action      string      `json:"action"`
	DeveloperID int         `json:"developerId"`
	Metadata    entity.JSON `json:"metadata,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
