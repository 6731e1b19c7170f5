package service

import (
	"context"
	"errors"

	"fanhub-go/internal/api/dto"
	"fanhub-go/internal/config"
	"fanhub-go/internal/storage"
	"fanhub-go/pkg/utils"
)

var (
	ErrInvalidCredential = errors.New("用户名或密码错误")
)

type AuthService struct {
	store storage.Storage
}

func NewAuthService(store storage.Storage) *AuthService {
	return &AuthService{store: store}
}

// Login 管理员登录，校验通过后返回静态管理令牌
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginData, error) {
	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredential
	}

	return &dto.LoginData{
		ID:       user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		Token:    config.GetAuth().AdminToken,
	}, nil
}
