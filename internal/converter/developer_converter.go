package converter

import (
	"developer-service/internal/delivery/dto"
	"developer-service/internal/domain/entity"
)

// CreateRequestToDeveloper builds a transient Developer from a create request.
// A missing status defaults to ACTIVE.
func CreateRequestToDeveloper(req *dto.CreateDeveloperRequest) *entity.Developer {
	return &entity.Developer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Specialty: req.Specialty,
		Status:    statusOrActive(req.Status),
	}
}

// UpdateRequestToDeveloper builds a Developer carrying every field of an update request.
// A missing status keeps currentStatus.
func UpdateRequestToDeveloper(req *dto.UpdateDeveloperRequest, currentStatus entity.DeveloperStatus) *entity.Developer {
	status := req.Status
	if status == "" {
		status = currentStatus
	}
	return &entity.Developer{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Specialty: req.Specialty,
		Status:    status,
	}
}

// DeveloperToResponse converts a Developer entity to DeveloperResponse DTO
func DeveloperToResponse(developer *entity.Developer) *dto.DeveloperResponse {
	if developer == nil {
		return nil
	}

	return &dto.DeveloperResponse{
		ID:        developer.ID,
		FirstName: developer.FirstName,
		LastName:  developer.LastName,
		Email:     developer.Email,
		Specialty: developer.Specialty,
		Status:    developer.Status,
	}
}

// DevelopersToResponses converts a slice of Developer entities to slice of DeveloperResponse DTOs
func DevelopersToResponses(developers []entity.Developer) []dto.DeveloperResponse {
	responses := make([]dto.DeveloperResponse, len(developers))
	for i := range developers {
		responses[i] = *DeveloperToResponse(&developers[i])
	}
	return responses
}

func statusOrActive(status entity.DeveloperStatus) entity.DeveloperStatus {
	if status == "" {
		return entity.DeveloperStatusActive
	}
	return status
}
