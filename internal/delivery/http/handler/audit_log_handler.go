package handler

import (
	"errors"
	"net/http"
	"strconv"

	"developer-service/internal/usecase"
	"developer-service/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		if errors.Is(err, usecase.ErrAuditLogNotFound) {
			response.NotFound(w, "Audit log not found")
			return
		}
		response.InternalServerError(w, "Failed to get audit log")
		return
	}

	response.OK(w, auditLog)
}

func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	var developerID *int
	if raw := r.URL.Query().Get("developerId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			response.BadRequest(w, "Invalid developerId parameter")
			return
		}
		id := int(parsed)
		developerID = &id
	}

	auditLogs, err := h.auditLogUsecase.GetAllAuditLogs(r.Context(), developerID)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.OK(w, auditLogs)
}
