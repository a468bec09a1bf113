package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"taskrewards/internal/domain"
)

type AuthUseCase struct {
	users        UserRepository
	tokenCache   TokenCache
	hasher       PasswordHasher
	tokenManager TokenManager
}

func NewAuthUseCase(ur UserRepository, tc TokenCache, h PasswordHasher, tm TokenManager) *AuthUseCase {
	return &AuthUseCase{
		users:        ur,
		tokenCache:   tc,
		hasher:       h,
		tokenManager: tm,
	}
}

type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

func (uc *AuthUseCase) Register(ctx context.Context, username, email, password string) (*domain.User, *TokenPair, error) {
	if _, err := uc.users.GetByEmail(ctx, email); err == nil {
		return nil, nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, err
	}
	if _, err := uc.users.GetByUsername(ctx, username); err == nil {
		return nil, nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, err
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, nil, err
	}

	user := &domain.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  hash,
		CreatedAt: time.Now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := uc.issueTokens(ctx, user.ID.String())
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if err := uc.hasher.Compare(user.Password, password); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := uc.issueTokens(ctx, user.ID.String())
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh rotates the pair: the presented refresh token is revoked and a
// fresh one stored.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := uc.tokenManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	cachedID, err := uc.tokenCache.CheckRefresh(ctx, refreshToken)
	if err != nil || cachedID != userID {
		return nil, domain.ErrInvalidCredentials
	}
	_ = uc.tokenCache.DeleteRefresh(ctx, refreshToken)

	return uc.issueTokens(ctx, userID)
}

func (uc *AuthUseCase) Logout(ctx context.Context, refreshToken string) error {
	return uc.tokenCache.DeleteRefresh(ctx, refreshToken)
}

func (uc *AuthUseCase) ValidateAccess(token string) (string, error) {
	return uc.tokenManager.ValidateAccessToken(token)
}

func (uc *AuthUseCase) issueTokens(ctx context.Context, userID string) (*TokenPair, error) {
	access, refresh, err := uc.tokenManager.Generate(userID)
	if err != nil {
		return nil, err
	}
	if err := uc.tokenCache.SaveRefresh(ctx, userID, refresh); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
