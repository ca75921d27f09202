package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

type UserRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewUserRepository(writerDB, readerDB *gorm.DB) *UserRepository {
	return &UserRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.writerDB.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.readerDB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByExternalID reads from the writer so a user created moments ago by a
// concurrent callback is visible.
func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	var user domain.User
	if err := r.writerDB.WithContext(ctx).First(&user, "external_id = ?", externalID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	return r.writerDB.WithContext(ctx).Save(user).Error
}
