package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"loop/internal/common"
	"loop/internal/dbmysql"
)

// Service mirrors profiles issued by the external identity provider. It never
// authenticates anyone; the session token already proved who the caller is.
type Service interface {
	GetProfile(ctx context.Context, userID int64) (*dbmysql.User, error)
	SyncProfile(ctx context.Context, userID int64, phone, name string) (*dbmysql.User, error)
	UpdateProfile(ctx context.Context, userID int64, name, avatarPath *string) (*dbmysql.User, error)
}

type userService struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &userService{repo: repo}
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*dbmysql.User, error) {
	u, err := s.repo.ByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrUserNotFound
	}
	if err != nil {
		return nil, common.Upstream("user lookup", err)
	}
	return u, nil
}

// SyncProfile records or refreshes the caller's mirrored row. Called on first
// contact after the identity provider verified the phone number.
func (s *userService) SyncProfile(ctx context.Context, userID int64, phone, name string) (*dbmysql.User, error) {
	u := &dbmysql.User{ID: userID, Phone: phone, Name: name}
	if err := s.repo.Upsert(ctx, u); err != nil {
		return nil, common.Upstream("user upsert", err)
	}
	return u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, name, avatarPath *string) (*dbmysql.User, error) {
	u, err := s.repo.ByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrUserNotFound
	}
	if err != nil {
		return nil, common.Upstream("user lookup", err)
	}

	if name != nil {
		if err := common.ValidateDisplayName(*name); err != nil {
			return nil, err
		}
		u.Name = *name
	}
	if avatarPath != nil {
		u.AvatarPath = avatarPath
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, common.Upstream("user update", err)
	}
	return u, nil
}
