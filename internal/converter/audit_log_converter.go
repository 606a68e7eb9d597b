package converter

import (
	"developer-service/internal/delivery/dto"
	"developer-service/internal/domain/entity"
)

// AuditLogToResponse converts a AuditLog entity to AuditLogResponse DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	response := &dto.AuditLogResponse{
		ID:          log.ID,
		Action:      log.Action,
		DeveloperID: log.DeveloperID,
		Metadata:    log.Metadata,
		CreatedAt:   log.CreatedAt,
	}
	if log.ActorID != nil {
		response.ActorID = *log.ActorID
	}
	return response
}

// AuditLogsToResponses converts a slice of AuditLog entities to slice of AuditLogResponse DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}
