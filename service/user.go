package service

import (
	"context"
	"errors"
	"time"

	"FitHub/dao"
	"FitHub/models"
	"FitHub/pkg/encrypt"
	"FitHub/pkg/errs"
	"FitHub/types"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.UserView, error)
	FindByUsername(ctx context.Context, username string) (*types.UserView, error)
}

type UserService struct {
	UserDAO *dao.UserDAO
}

// Register creates a user with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.UserView, error) {
	if req.Username == "" || req.Password == "" {
		return nil, errs.Validationf("username and password must not be empty")
	}
	if s.UserDAO.IsUsernameExist(ctx, req.Username) {
		return nil, errs.Conflictf("username already exists")
	}

	user := &models.User{
		Username:  req.Username,
		Password:  encrypt.HashPassword(req.Password),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		// racing registration with the same username
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Conflictf("username already exists")
		}
		return nil, err
	}

	return &types.UserView{ID: user.ID, Username: user.Username}, nil
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*types.UserView, error) {
	user, err := s.UserDAO.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("user not found")
		}
		return nil, err
	}
	return &types.UserView{ID: user.ID, Username: user.Username}, nil
}
