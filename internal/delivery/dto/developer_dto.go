package dto

import "developer-service/internal/domain/entity"

// Request DTOs

type CreateDeveloperRequest struct {
	FirstName string                 `json:"firstName" validate:"required,max=100"`
	LastName  string                 `json:"lastName" validate:"required,max=100"`
	Email     string                 `json:"email" validate:"required,email,max=255"`
	Specialty string                 `json:"specialty" validate:"required,max=100"`
	Status    entity.DeveloperStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE DELETED"`
}

type UpdateDeveloperRequest struct {
	ID        int                    `json:"id" validate:"required,gt=0,max=2147483647"`
	FirstName string                 `json:"firstName" validate:"required,max=100"`
	LastName  string                 `json:"lastName" validate:"required,max=100"`
	Email     string                 `json:"email" validate:"required,email,max=255"`
	Specialty string                 `json:"specialty" validate:"required,max=100"`
	Status    entity.DeveloperStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE DELETED"`
}

// Response DTOs

type DeveloperResponse struct {
	ID        int                    `json:"id,omitempty"`
	FirstName string                 `json:"firstName,omitempty"`
	LastName  string                 `json:"lastName,omitempty"`
	Email     string                 `json:"email,omitempty"`
	Specialty string                 `json:"specialty,omitempty"`
	Status    entity.DeveloperStatus `json:"status,omitempty"`
}
