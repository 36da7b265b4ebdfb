package service

import (
	"context"
	"errors"
	"time"

	"FitHub/config"
	"FitHub/dao"
	"FitHub/pkg/encrypt"
	"FitHub/pkg/errs"
	"FitHub/pkg/jwt"
	"FitHub/types"

	"gorm.io/gorm"
)

// TokenStore is the refresh-token allowlist consulted on refresh.
type TokenStore interface {
	StoreRefreshToken(ctx context.Context, userID int64, token string, ttl time.Duration) error
	ValidateRefreshToken(ctx context.Context, userID int64, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID int64) error
}

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Login(ctx context.Context, username, password string) (*types.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error)
}

type AuthService struct {
	Config  *config.Config
	UserDAO *dao.UserDAO
	Tokens  TokenStore
}

// Login checks credentials and issues an access/refresh pair. The refresh
// token is kept digest-only on the user row and verbatim in the allowlist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*types.TokenPair, error) {
	user, err := s.UserDAO.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Unauthorizedf("invalid credentials")
		}
		return nil, err
	}
	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, errs.Unauthorizedf("invalid credentials")
	}

	return s.issuePair(ctx, user.ID, user.Username)
}

// Refresh validates a refresh token against the allowlist and rotates the pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error) {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), "refresh", refreshToken)
	if err != nil {
		return nil, errs.Unauthorizedf("invalid refresh token")
	}

	ok, err := s.Tokens.ValidateRefreshToken(ctx, claims.UserID, refreshToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.Unauthorizedf("refresh token revoked")
	}

	return s.issuePair(ctx, claims.UserID, claims.Username)
}

func (s *AuthService) issuePair(ctx context.Context, userID int64, username string) (*types.TokenPair, error) {
	secret := []byte(s.Config.Jwt.Secret)
	accessTTL := time.Duration(s.Config.Jwt.AccessExpire) * time.Minute
	refreshTTL := time.Duration(s.Config.Jwt.RefreshExpire) * time.Minute

	access, err := jwt.GenerateToken(secret, userID, username, "access", accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateToken(secret, userID, username, "refresh", refreshTTL)
	if err != nil {
		return nil, err
	}

	if err := s.UserDAO.UpdateByID(ctx, userID, map[string]any{
		"refresh_token": encrypt.HashToken(refresh),
		"updated_at":    time.Now(),
	}); err != nil {
		return nil, err
	}
	if err := s.Tokens.StoreRefreshToken(ctx, userID, refresh, refreshTTL); err != nil {
		return nil, err
	}

	return &types.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
