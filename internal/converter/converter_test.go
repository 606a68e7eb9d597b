package converter

import (
	"testing"
	"time"

	"developer-service/internal/delivery/dto"
	"developer-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCreateRequestToDeveloper_DefaultsStatus(t *testing.T) {
	developer := CreateRequestToDeveloper(&dto.CreateDeveloperRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@mail.com",
		Specialty: "Java",
	})

	assert.Zero(t, developer.ID)
	assert.Equal(t, "john.doe@mail.com", developer.Email)
	assert.Equal(t, entity.DeveloperStatusActive, developer.Status)
}

func TestUpdateRequestToDeveloper_CopiesEveryField(t *testing.T) {
	developer := UpdateRequestToDeveloper(&dto.UpdateDeveloperRequest{
		ID:        3,
		FirstName: "Frank",
		LastName:  "Jones",
		Email:     "frank.jones@mail.com",
		Specialty: "Go",
		Status:    entity.DeveloperStatusDeleted,
	}, entity.DeveloperStatusActive)

	assert.Equal(t, &entity.Developer{
		ID:        3,
		FirstName: "Frank",
		LastName:  "Jones",
		Email:     "frank.jones@mail.com",
		Specialty: "Go",
		Status:    entity.DeveloperStatusDeleted,
	}, developer)
}

func TestUpdateRequestToDeveloper_MissingStatusKeepsCurrent(t *testing.T) {
	req := &dto.UpdateDeveloperRequest{ID: 3, FirstName: "Frank", LastName: "Jones", Email: "frank.jones@mail.com", Specialty: "Go"}

	assert.Equal(t, entity.DeveloperStatusDeleted, UpdateRequestToDeveloper(req, entity.DeveloperStatusDeleted).Status)
	assert.Equal(t, entity.DeveloperStatusActive, UpdateRequestToDeveloper(req, entity.DeveloperStatusActive).Status)

	req.Status = entity.DeveloperStatusActive
	assert.Equal(t, entity.DeveloperStatusActive, UpdateRequestToDeveloper(req, entity.DeveloperStatusDeleted).Status)
}

func TestDeveloperToResponse(t *testing.T) {
	assert.Nil(t, DeveloperToResponse(nil))

	response := DeveloperToResponse(&entity.Developer{
		ID: 1, FirstName: "John", LastName: "Doe", Email: "john.doe@mail.com",
		Specialty: "Java", Status: entity.DeveloperStatusActive,
	})
	assert.Equal(t, &dto.DeveloperResponse{
		ID: 1, FirstName: "John", LastName: "Doe", Email: "john.doe@mail.com",
		Specialty: "Java", Status: entity.DeveloperStatusActive,
	}, response)
}

func TestDevelopersToResponses_EmptySliceNotNil(t *testing.T) {
	responses := DevelopersToResponses(nil)
	assert.NotNil(t, responses)
	assert.Empty(t, responses)
}

func TestAuditLogToResponse(t *testing.T) {
	actor := "ops@example.com"
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	response := AuditLogToResponse(&entity.AuditLog{
		ID: 9, ActorID: &actor, Action: entity.AuditActionDeveloperCreate,
		DeveloperID: 1, CreatedAt: createdAt,
	})
	assert.Equal(t, "ops@example.com", response.ActorID)
	assert.Equal(t, createdAt, response.CreatedAt)

	anonymous := AuditLogsToResponses([]entity.AuditLog{{ID: 10, Action: entity.AuditActionDeveloperHardDelete}})
	assert.Len(t, anonymous, 1)
	assert.Empty(t, anonymous[0].ActorID)
}
