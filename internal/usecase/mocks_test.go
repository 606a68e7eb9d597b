package usecase

import (
	"context"

	"developer-service/internal/delivery/dto"
	"developer-service/internal/domain/entity"
	"developer-service/internal/domain/repository"
	"developer-service/internal/service"

	"github.com/stretchr/testify/mock"
)

var (
	_ repository.DeveloperRepository = (*MockDeveloperRepository)(nil)
	_ repository.AuditLogRepository  = (*MockAuditLogRepository)(nil)
	_ service.AuditService           = (*MockAuditService)(nil)
	_ service.DeveloperCache         = (*MockDeveloperCache)(nil)
)

type MockDeveloperRepository struct {
	mock.Mock
}

func (m *MockDeveloperRepository) Create(ctx context.Context, developer *entity.Developer) error {
	args := m.Called(ctx, developer)
	return args.Error(0)
}

func (m *MockDeveloperRepository) FindByID(ctx context.Context, id int) (*entity.Developer, error) {
	args := m.Called(ctx, id)
	developer, _ := args.Get(0).(*entity.Developer)
	return developer, args.Error(1)
}

func (m *MockDeveloperRepository) FindByEmail(ctx context.Context, email string) (*entity.Developer, error) {
	args := m.Called(ctx, email)
	developer, _ := args.Get(0).(*entity.Developer)
	return developer, args.Error(1)
}

func (m *MockDeveloperRepository) FindAll(ctx context.Context) ([]entity.Developer, error) {
	args := m.Called(ctx)
	developers, _ := args.Get(0).([]entity.Developer)
	return developers, args.Error(1)
}

func (m *MockDeveloperRepository) FindAllActiveBySpecialty(ctx context.Context, specialty string) ([]entity.Developer, error) {
	args := m.Called(ctx, specialty)
	developers, _ := args.Get(0).([]entity.Developer)
	return developers, args.Error(1)
}

func (m *MockDeveloperRepository) Update(ctx context.Context, developer *entity.Developer) error {
	args := m.Called(ctx, developer)
	return args.Error(0)
}

func (m *MockDeveloperRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDeveloperRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindAll(ctx context.Context, developerID *int) ([]entity.AuditLog, error) {
	args := m.Called(ctx, developerID)
	logs, _ := args.Get(0).([]entity.AuditLog)
	return logs, args.Error(1)
}

func (m *MockAuditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	args := m.Called(ctx, id)
	log, _ := args.Get(0).(*entity.AuditLog)
	return log, args.Error(1)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogCreate(ctx context.Context, actorID *string, action string, developerID int, newValue interface{}) error {
	args := m.Called(ctx, actorID, action, developerID, newValue)
	return args.Error(0)
}

func (m *MockAuditService) LogUpdate(ctx context.Context, actorID *string, action string, developerID int, oldValue, newValue interface{}) error {
	args := m.Called(ctx, actorID, action, developerID, oldValue, newValue)
	return args.Error(0)
}

func (m *MockAuditService) LogDelete(ctx context.Context, actorID *string, action string, developerID int, oldValue interface{}) error {
	args := m.Called(ctx, actorID, action, developerID, oldValue)
	return args.Error(0)
}

type MockDeveloperCache struct {
	mock.Mock
}

func (m *MockDeveloperCache) Get(ctx context.Context, id int) (*dto.DeveloperResponse, bool) {
	args := m.Called(ctx, id)
	developer, _ := args.Get(0).(*dto.DeveloperResponse)
	return developer, args.Bool(1)
}

func (m *MockDeveloperCache) Set(ctx context.Context, developer *dto.DeveloperResponse) {
	m.Called(ctx, developer)
}

func (m *MockDeveloperCache) Invalidate(ctx context.Context, id int) {
	m.Called(ctx, id)
}

// Test data

func johnDoeTransient() *dto.CreateDeveloperRequest {
	return &dto.CreateDeveloperRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@mail.com",
		Specialty: "Java",
	}
}

func johnDoePersisted() *entity.Developer {
	return &entity.Developer{
		ID:        1,
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@mail.com",
		Specialty: "Java",
		Status:    entity.DeveloperStatusActive,
	}
}

func mikeSmithPersisted() *entity.Developer {
	return &entity.Developer{
		ID:        2,
		FirstName: "Mike",
		LastName:  "Smith",
		Email:     "mike.smith@mail.com",
		Specialty: "Java",
		Status:    entity.DeveloperStatusActive,
	}
}

func frankJonesPersisted() *entity.Developer {
	return &entity.Developer{
		ID:        3,
		FirstName: "Frank",
		LastName:  "Jones",
		Email:     "frank.jones@mail.com",
		Specialty: "Java",
		Status:    entity.DeveloperStatusDeleted,
	}
}
