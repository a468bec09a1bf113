package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"taskrewards/internal/domain"
)

type UserUseCase struct {
	users  UserRepository
	ledger *LedgerUseCase
	hasher PasswordHasher
}

func NewUserUseCase(ur UserRepository, lu *LedgerUseCase, h PasswordHasher) *UserUseCase {
	return &UserUseCase{users: ur, ledger: lu, hasher: h}
}

func (uc *UserUseCase) Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

type UpdateProfileInput struct {
	Username        *string
	Email           *string
	CurrentPassword *string
	NewPassword     *string
}

// UpdateProfile applies a partial update. All checks run before any write,
// so a failed uniqueness or password check leaves the profile untouched.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil && *input.Username != user.Username {
		if _, err := uc.users.GetByUsername(ctx, *input.Username); err == nil {
			return nil, domain.ErrUsernameTaken
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		user.Username = *input.Username
	}

	if input.Email != nil && *input.Email != user.Email {
		if _, err := uc.users.GetByEmail(ctx, *input.Email); err == nil {
			return nil, domain.ErrEmailTaken
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		user.Email = *input.Email
	}

	if input.CurrentPassword != nil && input.NewPassword != nil {
		if err := uc.hasher.Compare(user.Password, *input.CurrentPassword); err != nil {
			return nil, domain.ErrInvalidCredentials
		}
		hash, err := uc.hasher.Hash(*input.NewPassword)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *UserUseCase) UpgradePremium(ctx context.Context, userID uuid.UUID) error {
	return uc.ledger.SetPremium(ctx, userID)
}
