package repository

import (
	"context"
	"errors"

	"developer-service/internal/domain/entity"
)

// ErrRecordNotFound is returned by writes that matched no row.
var ErrRecordNotFound = errors.New("record not found")

type DeveloperRepository interface {
	Create(ctx context.Context, developer *entity.Developer) error
	FindByID(ctx context.Context, id int) (*entity.Developer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Developer, error)
	FindAll(ctx context.Context) ([]entity.Developer, error)
	FindAllActiveBySpecialty(ctx context.Context, specialty string) ([]entity.Developer, error)
	Update(ctx context.Context, developer *entity.Developer) error
	Delete(ctx context.Context, id int) error
	ExistsByID(ctx context.Context, id int) (bool, error)
}
