package group

import (
	"context"
	"errors"
	"testing"

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

func strptr(s string) *string { return &s }

func TestGroupRepository_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewGroupRepository(newTestDB(t))

	g := &dbmysql.Group{
		Name:       "Road Trip",
		JoinCode:   strptr("0042"),
		CreatorID:  1,
		MaxMembers: 6,
		Active:     true,
	}
	require.NoError(t, repo.Create(ctx, g))
	require.NotZero(t, g.ID)

	byID, err := repo.ByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Road Trip", byID.Name)

	byCode, err := repo.ActiveByCode(ctx, "0042")
	require.NoError(t, err)
	assert.Equal(t, g.ID, byCode.ID)

	_, err = repo.ActiveByCode(ctx, "9999")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestGroupRepository_JoinCodeUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewGroupRepository(newTestDB(t))

	first := &dbmysql.Group{Name: "One", JoinCode: strptr("1234"), CreatorID: 1, MaxMembers: 6, Active: true}
	require.NoError(t, repo.Create(ctx, first))

	dup := &dbmysql.Group{Name: "Two", JoinCode: strptr("1234"), CreatorID: 2, MaxMembers: 6, Active: true}
	err := repo.Create(ctx, dup)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

// A deactivated group nulls its join code, so the code can be reissued.
// NULLs never collide in the unique index.
func TestGroupRepository_FreedCodeIsReusable(t *testing.T) {
	ctx := context.Background()
	repo := NewGroupRepository(newTestDB(t))

	old := &dbmysql.Group{Name: "Old", JoinCode: strptr("1234"), CreatorID: 1, MaxMembers: 6, Active: true}
	require.NoError(t, repo.Create(ctx, old))

	old.Active = false
	old.JoinCode = nil
	require.NoError(t, repo.Update(ctx, old))

	another := &dbmysql.Group{Name: "Also Codeless", CreatorID: 2, MaxMembers: 6, Active: false}
	require.NoError(t, repo.Create(ctx, another))

	fresh := &dbmysql.Group{Name: "New", JoinCode: strptr("1234"), CreatorID: 3, MaxMembers: 6, Active: true}
	require.NoError(t, repo.Create(ctx, fresh))

	found, err := repo.ActiveByCode(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, fresh.ID, found.ID)
}

func TestGroupRepository_ActiveByIDFiltersInactive(t *testing.T) {
	ctx := context.Background()
	repo := NewGroupRepository(newTestDB(t))

	g := &dbmysql.Group{Name: "Gone", CreatorID: 1, MaxMembers: 6, Active: false}
	require.NoError(t, repo.Create(ctx, g))

	_, err := repo.ActiveByID(ctx, g.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	byID, err := repo.ByID(ctx, g.ID)
	require.NoError(t, err)
	assert.False(t, byID.Active)
}

func TestGroupRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewGroupRepository(newTestDB(t))

	g := &dbmysql.Group{Name: "Short Lived", CreatorID: 1, MaxMembers: 6, Active: false}
	require.NoError(t, repo.Create(ctx, g))
	require.NoError(t, repo.Delete(ctx, g.ID))

	_, err := repo.ByID(ctx, g.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
