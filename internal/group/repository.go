package group

import (
	"context"

	"gorm.io/gorm"

	"loop/internal/dbmysql"
)

type Repository interface {
	Create(ctx context.Context, g *dbmysql.Group) error
	ByID(ctx context.Context, id int64) (*dbmysql.Group, error)
	ActiveByID(ctx context.Context, id int64) (*dbmysql.Group, error)
	ActiveByCode(ctx context.Context, code string) (*dbmysql.Group, error)
	Update(ctx context.Context, g *dbmysql.Group) error
	Delete(ctx context.Context, id int64) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) Repository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, g *dbmysql.Group) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *groupRepository) ByID(ctx context.Context, id int64) (*dbmysql.Group, error) {
	var g dbmysql.Group
	err := r.db.WithContext(ctx).First(&g, "group_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *groupRepository) ActiveByID(ctx context.Context, id int64) (*dbmysql.Group, error) {
	var g dbmysql.Group
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND active = ?", id, true).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *groupRepository) ActiveByCode(ctx context.Context, code string) (*dbmysql.Group, error) {
	var g dbmysql.Group
	err := r.db.WithContext(ctx).
		Where("join_code = ? AND active = ?", code, true).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *groupRepository) Update(ctx context.Context, g *dbmysql.Group) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *groupRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.Group{}, "group_id = ?", id).Error
}
