package repository

import (
	"context"
	"errors"

	"developer-service/internal/domain/entity"
	domainRepo "developer-service/internal/domain/repository"

	"gorm.io/gorm"
)

type developerRepository struct {
	db *gorm.DB
}

func NewDeveloperRepository(db *gorm.DB) domainRepo.DeveloperRepository {
	return &developerRepository{db: db}
}

func (r *developerRepository) Create(ctx context.Context, developer *entity.Developer) error {
	return r.db.WithContext(ctx).Create(developer).Error
}

func (r *developerRepository) FindByID(ctx context.Context, id int) (*entity.Developer, error) {
	var developer entity.Developer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&developer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &developer, nil
}

func (r *developerRepository) FindByEmail(ctx context.Context, email string) (*entity.Developer, error) {
	var developer entity.Developer
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&developer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &developer, nil
}

func (r *developerRepository) FindAll(ctx context.Context) ([]entity.Developer, error) {
	var developers []entity.Developer
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&developers).Error; err != nil {
		return nil, err
	}
	return developers, nil
}

func (r *developerRepository) FindAllActiveBySpecialty(ctx context.Context, specialty string) ([]entity.Developer, error) {
	var developers []entity.Developer
	err := r.db.WithContext(ctx).
		Where("status = ? AND specialty = ?", entity.DeveloperStatusActive, specialty).
		Order("id ASC").
		Find(&developers).Error
	if err != nil {
		return nil, err
	}
	return developers, nil
}

// Update overwrites the mutable columns of an existing row and never inserts.
func (r *developerRepository) Update(ctx context.Context, developer *entity.Developer) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Developer{}).
		Where("id = ?", developer.ID).
		Select("first_name", "last_name", "email", "specialty", "status", "updated_at").
		Updates(developer)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainRepo.ErrRecordNotFound
	}
	return nil
}

func (r *developerRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Developer{}).Error
}

func (r *developerRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Developer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
