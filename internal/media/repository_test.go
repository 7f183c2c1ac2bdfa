package media

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"loop/internal/dbmysql"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbmysql.Migrate(db))
	return db
}

func seedMedia(t *testing.T, repo Repository, groupID int64, n int) []dbmysql.Media {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	items := make([]dbmysql.Media, 0, n)
	for i := 0; i < n; i++ {
		m := &dbmysql.Media{
			GroupID:     groupID,
			UploaderID:  1,
			StoragePath: fmt.Sprintf("groups/%d/blob-%d.jpg", groupID, i),
			Kind:        "image",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Insert(context.Background(), m))
		items = append(items, *m)
	}
	return items
}

func TestMediaRepository_ListByGroup(t *testing.T) {
	ctx := context.Background()
	repo := NewMediaRepository(newTestDB(t))

	seedMedia(t, repo, 1, 5)
	seedMedia(t, repo, 2, 2)

	items, err := repo.ListByGroup(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Most recent first, and only group 1's rows.
	for i := range items {
		assert.Equal(t, int64(1), items[i].GroupID)
		if i > 0 {
			assert.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt))
		}
	}

	all, err := repo.ListByGroupAll(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestMediaRepository_StoragePathUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewMediaRepository(newTestDB(t))

	m := &dbmysql.Media{GroupID: 1, UploaderID: 1, StoragePath: "groups/1/same.jpg", Kind: "image", CreatedAt: time.Now()}
	require.NoError(t, repo.Insert(ctx, m))

	dup := &dbmysql.Media{GroupID: 1, UploaderID: 2, StoragePath: "groups/1/same.jpg", Kind: "image", CreatedAt: time.Now()}
	err := repo.Insert(ctx, dup)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestMediaRepository_Likes(t *testing.T) {
	ctx := context.Background()
	repo := NewMediaRepository(newTestDB(t))

	items := seedMedia(t, repo, 1, 1)
	mediaID := items[0].ID

	require.NoError(t, repo.InsertLike(ctx, &dbmysql.Like{MediaID: mediaID, UserID: 2, CreatedAt: time.Now()}))
	require.NoError(t, repo.InsertLike(ctx, &dbmysql.Like{MediaID: mediaID, UserID: 3, CreatedAt: time.Now()}))

	err := repo.InsertLike(ctx, &dbmysql.Like{MediaID: mediaID, UserID: 2, CreatedAt: time.Now()})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	count, err := repo.CountLikes(ctx, mediaID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	removed, err := repo.DeleteLike(ctx, mediaID, 2)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.DeleteLike(ctx, mediaID, 2)
	require.NoError(t, err)
	assert.False(t, removed)

	count, err = repo.CountLikes(ctx, mediaID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMediaRepository_DeleteByGroupSweepsLikes(t *testing.T) {
	ctx := context.Background()
	repo := NewMediaRepository(newTestDB(t))

	mine := seedMedia(t, repo, 1, 2)
	other := seedMedia(t, repo, 2, 1)

	require.NoError(t, repo.InsertLike(ctx, &dbmysql.Like{MediaID: mine[0].ID, UserID: 5, CreatedAt: time.Now()}))
	require.NoError(t, repo.InsertLike(ctx, &dbmysql.Like{MediaID: mine[1].ID, UserID: 5, CreatedAt: time.Now()}))
	require.NoError(t, repo.InsertLike(ctx, &dbmysql.Like{MediaID: other[0].ID, UserID: 5, CreatedAt: time.Now()}))

	require.NoError(t, repo.DeleteLikesByGroup(ctx, 1))
	require.NoError(t, repo.DeleteByGroup(ctx, 1))

	remaining, err := repo.ListByGroupAll(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	count, err := repo.CountLikes(ctx, other[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountLikes(ctx, mine[0].ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
