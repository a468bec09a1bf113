package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskrewards/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.classifyDuplicate(ctx, user.Username, uuid.Nil)
		}
		return translate(err)
	}
	return nil
}

// classifyDuplicate picks the sentinel for a unique violation that raced
// past the usecase pre-checks. A username hit takes precedence; anything
// else must have been the email index. excludeID skips the row being
// updated, if any.
func (r *UserRepository) classifyDuplicate(ctx context.Context, username string, excludeID uuid.UUID) error {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.User{}).Where("username = ?", username)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return translate(err)
	}
	if count > 0 {
		return domain.ErrUsernameTaken
	}
	return domain.ErrEmailTaken
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Update persists profile fields. Coins and the premium flag stay with the
// ledger repository.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"username": user.Username,
			"email":    user.Email,
			"password": user.Password,
		}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.classifyDuplicate(ctx, user.Username, user.ID)
		}
		return translate(err)
	}
	return nil
}
