package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"loop/internal/dbmysql"
)

type Repository interface {
	Upsert(ctx context.Context, u *dbmysql.User) error
	ByID(ctx context.Context, userID int64) (*dbmysql.User, error)
	ByPhone(ctx context.Context, phone string) (*dbmysql.User, error)
	Update(ctx context.Context, u *dbmysql.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) Repository {
	return &userRepository{db: db}
}

// Upsert keys on user_id: the identity provider assigns ids, this table only
// mirrors them.
func (r *userRepository) Upsert(ctx context.Context, u *dbmysql.User) error {
	var existing dbmysql.User
	err := r.db.WithContext(ctx).First(&existing, "user_id = ?", u.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(u).Error
	}
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *userRepository) ByID(ctx context.Context, userID int64) (*dbmysql.User, error) {
	var u dbmysql.User
	err := r.db.WithContext(ctx).First(&u, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) ByPhone(ctx context.Context, phone string) (*dbmysql.User, error) {
	var u dbmysql.User
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Update(ctx context.Context, u *dbmysql.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
