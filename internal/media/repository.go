package media

import (
	"context"

	"gorm.io/gorm"

	"loop/internal/dbmysql"
)

type Repository interface {
	Insert(ctx context.Context, m *dbmysql.Media) error
	ByID(ctx context.Context, id int64) (*dbmysql.Media, error)
	ListByGroup(ctx context.Context, groupID int64, limit int) ([]dbmysql.Media, error)
	ListByGroupAll(ctx context.Context, groupID int64) ([]dbmysql.Media, error)
	DeleteByGroup(ctx context.Context, groupID int64) error

	InsertLike(ctx context.Context, l *dbmysql.Like) error
	DeleteLike(ctx context.Context, mediaID, userID int64) (bool, error)
	CountLikes(ctx context.Context, mediaID int64) (int64, error)
	DeleteLikesByGroup(ctx context.Context, groupID int64) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) Repository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Insert(ctx context.Context, m *dbmysql.Media) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mediaRepository) ByID(ctx context.Context, id int64) (*dbmysql.Media, error) {
	var m dbmysql.Media
	err := r.db.WithContext(ctx).First(&m, "media_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mediaRepository) ListByGroup(ctx context.Context, groupID int64, limit int) ([]dbmysql.Media, error) {
	var items []dbmysql.Media
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *mediaRepository) ListByGroupAll(ctx context.Context, groupID int64) ([]dbmysql.Media, error) {
	var items []dbmysql.Media
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Find(&items).Error
	return items, err
}

func (r *mediaRepository) DeleteByGroup(ctx context.Context, groupID int64) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.Media{}, "group_id = ?", groupID).Error
}

func (r *mediaRepository) InsertLike(ctx context.Context, l *dbmysql.Like) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// DeleteLike reports whether a row was actually removed so the service can
// tell "unliked" apart from "was never liked".
func (r *mediaRepository) DeleteLike(ctx context.Context, mediaID, userID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Delete(&dbmysql.Like{}, "media_id = ? AND user_id = ?", mediaID, userID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *mediaRepository) CountLikes(ctx context.Context, mediaID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Like{}).
		Where("media_id = ?", mediaID).
		Count(&count).Error
	return count, err
}

func (r *mediaRepository) DeleteLikesByGroup(ctx context.Context, groupID int64) error {
	return r.db.WithContext(ctx).
		Where("media_id IN (?)", r.db.Model(&dbmysql.Media{}).Select("media_id").Where("group_id = ?", groupID)).
		Delete(&dbmysql.Like{}).Error
}
