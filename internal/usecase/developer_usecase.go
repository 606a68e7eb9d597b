package usecase

import (
	"context"
	"errors"

	"developer-service/internal/converter"
	"developer-service/internal/delivery/dto"
	"developer-service/internal/delivery/http/middleware"
	"developer-service/internal/domain/entity"
	"developer-service/internal/domain/repository"
	"developer-service/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrDeveloperNotFound    = errors.New("developer not found")
	ErrDeveloperEmailExists = errors.New("developer with defined email already exists")
)

type DeveloperUsecase interface {
	CreateDeveloper(ctx context.Context, req *dto.CreateDeveloperRequest) (*dto.DeveloperResponse, error)
	UpdateDeveloper(ctx context.Context, req *dto.UpdateDeveloperRequest) (*dto.DeveloperResponse, error)
	GetDeveloperByID(ctx context.Context, id int) (*dto.DeveloperResponse, error)
	GetDeveloperByEmail(ctx context.Context, email string) (*dto.DeveloperResponse, error)
	GetAllActiveDevelopers(ctx context.Context) ([]dto.DeveloperResponse, error)
	GetAllActiveBySpecialty(ctx context.Context, specialty string) ([]dto.DeveloperResponse, error)
	SoftDeleteByID(ctx context.Context, id int) error
	HardDeleteByID(ctx context.Context, id int) error
}

type developerUsecase struct {
	log           *logrus.Logger
	developerRepo repository.DeveloperRepository
	auditService  service.AuditService
	cache         service.DeveloperCache
}

func NewDeveloperUsecase(
	log *logrus.Logger,
	developerRepo repository.DeveloperRepository,
	auditService service.AuditService,
	cache service.DeveloperCache,
) DeveloperUsecase {
	if cache == nil {
		cache = service.NewNoopDeveloperCache()
	}
	return &developerUsecase{
		log:           log,
		developerRepo: developerRepo,
		auditService:  auditService,
		cache:         cache,
	}
}

func (u *developerUsecase) CreateDeveloper(ctx context.Context, req *dto.CreateDeveloperRequest) (*dto.DeveloperResponse, error) {
	duplicate, err := u.developerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find developer by email: %+v", err)
		return nil, err
	}
	if duplicate != nil {
		u.log.Warnf("Failed to create developer: %+v", ErrDeveloperEmailExists)
		return nil, ErrDeveloperEmailExists
	}

	developer := converter.CreateRequestToDeveloper(req)
	if err := u.developerRepo.Create(ctx, developer); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDeveloperEmailExists
		}
		u.log.Warnf("Failed to create developer: %+v", err)
		return nil, err
	}

	result := converter.DeveloperToResponse(developer)
	if err := u.auditService.LogCreate(ctx, actorFromContext(ctx), entity.AuditActionDeveloperCreate, developer.ID, result); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return result, nil
}

func (u *developerUsecase) UpdateDeveloper(ctx context.Context, req *dto.UpdateDeveloperRequest) (*dto.DeveloperResponse, error) {
	existing, err := u.developerRepo.FindByID(ctx, req.ID)
	if err != nil {
		u.log.Warnf("Failed to find developer: %+v", err)
		return nil, err
	}
	if existing == nil {
		u.log.Warnf("Failed to update developer: %+v", ErrDeveloperNotFound)
		return nil, ErrDeveloperNotFound
	}

	if existing.Email != req.Email {
		owner, err := u.developerRepo.FindByEmail(ctx, req.Email)
		if err != nil {
			u.log.Warnf("Failed to find developer by email: %+v", err)
			return nil, err
		}
		if owner != nil && owner.ID != req.ID {
			return nil, ErrDeveloperEmailExists
		}
	}

	oldValue := converter.DeveloperToResponse(existing)

	developer := converter.UpdateRequestToDeveloper(req, existing.Status)
	developer.CreatedAt = existing.CreatedAt
	if err := u.developerRepo.Update(ctx, developer); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDeveloperEmailExists
		}
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrDeveloperNotFound
		}
		u.log.Warnf("Failed to update developer: %+v", err)
		return nil, err
	}
	u.cache.Invalidate(ctx, developer.ID)

	newValue := converter.DeveloperToResponse(developer)
	if err := u.auditService.LogUpdate(ctx, actorFromContext(ctx), entity.AuditActionDeveloperUpdate, developer.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

func (u *developerUsecase) GetDeveloperByID(ctx context.Context, id int) (*dto.DeveloperResponse, error) {
	if cached, ok := u.cache.Get(ctx, id); ok {
		return cached, nil
	}

	developer, err := u.developerRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find developer: %+v", err)
		return nil, err
	}
	if developer == nil {
		return nil, ErrDeveloperNotFound
	}

	result := converter.DeveloperToResponse(developer)
	u.cache.Set(ctx, result)
	return result, nil
}

func (u *developerUsecase) GetDeveloperByEmail(ctx context.Context, email string) (*dto.DeveloperResponse, error) {
	developer, err := u.developerRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find developer by email: %+v", err)
		return nil, err
	}
	if developer == nil {
		return nil, ErrDeveloperNotFound
	}

	return converter.DeveloperToResponse(developer), nil
}

func (u *developerUsecase) GetAllActiveDevelopers(ctx context.Context) ([]dto.DeveloperResponse, error) {
	developers, err := u.developerRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all developers: %+v", err)
		return nil, err
	}

	active := make([]entity.Developer, 0, len(developers))
	for _, developer := range developers {
		if developer.IsActive() {
			active = append(active, developer)
		}
	}

	return converter.DevelopersToResponses(active), nil
}

func (u *developerUsecase) GetAllActiveBySpecialty(ctx context.Context, specialty string) ([]dto.DeveloperResponse, error) {
	developers, err := u.developerRepo.FindAllActiveBySpecialty(ctx, specialty)
	if err != nil {
		u.log.Warnf("Failed to find developers by specialty: %+v", err)
		return nil, err
	}

	return converter.DevelopersToResponses(developers), nil
}

func (u *developerUsecase) SoftDeleteByID(ctx context.Context, id int) error {
	developer, err := u.developerRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find developer: %+v", err)
		return err
	}
	if developer == nil {
		u.log.Warnf("Failed to soft delete developer: %+v", ErrDeveloperNotFound)
		return ErrDeveloperNotFound
	}

	oldValue := converter.DeveloperToResponse(developer)

	developer.Status = entity.DeveloperStatusDeleted
	if err := u.developerRepo.Update(ctx, developer); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrDeveloperNotFound
		}
		u.log.Warnf("Failed to soft delete developer: %+v", err)
		return err
	}
	u.cache.Invalidate(ctx, id)

	if err := u.auditService.LogUpdate(ctx, actorFromContext(ctx), entity.AuditActionDeveloperSoftDelete, id, oldValue, converter.DeveloperToResponse(developer)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *developerUsecase) HardDeleteByID(ctx context.Context, id int) error {
	exists, err := u.developerRepo.ExistsByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to check developer existence: %+v", err)
		return err
	}
	if !exists {
		u.log.Warnf("Failed to hard delete developer: %+v", ErrDeveloperNotFound)
		return ErrDeveloperNotFound
	}

	if err := u.developerRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to hard delete developer: %+v", err)
		return err
	}
	u.cache.Invalidate(ctx, id)

	if err := u.auditService.LogDelete(ctx, actorFromContext(ctx), entity.AuditActionDeveloperHardDelete, id, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func actorFromContext(ctx context.Context) *string {
	actorID, ok := middleware.GetActorIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &actorID
}
