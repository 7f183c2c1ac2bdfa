package group

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"loop/internal/common"
	"loop/internal/dbmysql"
)

// nopBus satisfies common.Subject for tests that don't assert on events.
type nopBus struct{}

func (nopBus) Subscribe(common.Observer)      {}
func (nopBus) Unsubscribe(common.Observer)    {}
func (nopBus) Publish(common.GroupEvent)      {}
func (nopBus) PublishAsync(common.GroupEvent) {}

var joinCodePattern = regexp.MustCompile(`^[0-9]{4}$`)

func newTestService(t *testing.T) (Service, *MockRepository, *MockRoster, *MockMediaPurger) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := NewMockRepository(ctrl)
	roster := NewMockRoster(ctrl)
	purger := NewMockMediaPurger(ctrl)
	svc := NewGroupService(repo, roster, purger, nopBus{})
	return svc, repo, roster, purger
}

func TestGroupService_CreateGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo, roster, _ := newTestService(t)

		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, g *dbmysql.Group) error {
				g.ID = 7
				return nil
			})
		roster.EXPECT().SeedAdmin(ctx, int64(7), int64(1)).Return(&dbmysql.Membership{
			GroupID: 7, UserID: 1, Role: dbmysql.RoleAdmin, Active: true,
		}, nil)

		g, err := svc.CreateGroup(ctx, 1, "Road Trip", 2, nil)
		require.NoError(t, err)
		require.NotNil(t, g)
		assert.Equal(t, "Road Trip", g.Name)
		assert.Equal(t, 2, g.MaxMembers)
		assert.True(t, g.Active)
		require.NotNil(t, g.JoinCode)
		assert.Regexp(t, joinCodePattern, *g.JoinCode)
	})

	t.Run("default capacity", func(t *testing.T) {
		svc, repo, roster, _ := newTestService(t)

		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, g *dbmysql.Group) error {
				g.ID = 8
				return nil
			})
		roster.EXPECT().SeedAdmin(ctx, int64(8), int64(1)).Return(&dbmysql.Membership{}, nil)

		g, err := svc.CreateGroup(ctx, 1, "Family", 0, nil)
		require.NoError(t, err)
		assert.Equal(t, dbmysql.DefaultMaxMembers, g.MaxMembers)
	})

	t.Run("retries on code collision", func(t *testing.T) {
		svc, repo, roster, _ := newTestService(t)

		firstCodes := map[string]bool{}
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, g *dbmysql.Group) error {
				firstCodes[*g.JoinCode] = true
				return gorm.ErrDuplicatedKey
			}).Times(2)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, g *dbmysql.Group) error {
				g.ID = 9
				return nil
			})
		roster.EXPECT().SeedAdmin(ctx, int64(9), int64(1)).Return(&dbmysql.Membership{}, nil)

		g, err := svc.CreateGroup(ctx, 1, "Collisions", 0, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(9), g.ID)
	})

	t.Run("code space exhausted after exactly 50 attempts", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(gorm.ErrDuplicatedKey).Times(50)

		g, err := svc.CreateGroup(ctx, 1, "Doomed", 0, nil)
		require.ErrorIs(t, err, common.ErrCodeSpaceExhausted)
		assert.Nil(t, g)
	})

	t.Run("partial failure carries orphaned group id", func(t *testing.T) {
		svc, repo, roster, _ := newTestService(t)

		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, g *dbmysql.Group) error {
				g.ID = 11
				return nil
			})
		roster.EXPECT().SeedAdmin(ctx, int64(11), int64(1)).Return(nil, errors.New("db is down"))

		g, err := svc.CreateGroup(ctx, 1, "Orphan", 0, nil)
		require.Error(t, err)
		assert.Nil(t, g)

		var partial *common.PartialCreateError
		require.ErrorAs(t, err, &partial)
		assert.Equal(t, int64(11), partial.GroupID)
	})

	t.Run("invalid name", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		_, err := svc.CreateGroup(ctx, 1, "   ", 0, nil)
		require.Error(t, err)
	})

	t.Run("non-collision insert error is upstream", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("connection refused"))

		_, err := svc.CreateGroup(ctx, 1, "Flaky", 0, nil)
		require.Error(t, err)

		var upstream *common.UpstreamError
		require.ErrorAs(t, err, &upstream)
	})
}

func TestGroupService_FindGroupByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		code := "0042"
		repo.EXPECT().ActiveByCode(ctx, "0042").Return(&dbmysql.Group{ID: 3, JoinCode: &code, Active: true}, nil)

		g, err := svc.FindGroupByCode(ctx, "0042")
		require.NoError(t, err)
		assert.Equal(t, int64(3), g.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().ActiveByCode(ctx, "9999").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.FindGroupByCode(ctx, "9999")
		require.ErrorIs(t, err, common.ErrGroupNotFound)
	})

	t.Run("malformed code is not found, no lookup", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		_, err := svc.FindGroupByCode(ctx, "12a4")
		require.ErrorIs(t, err, common.ErrGroupNotFound)
	})
}

func TestGroupService_RenameGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("success stamps updated name", func(t *testing.T) {
		svc, repo, roster, _ := newTestService(t)

		repo.EXPECT().ActiveByID(ctx, int64(5)).Return(&dbmysql.Group{ID: 5, Name: "Old", Active: true}, nil)
		roster.EXPECT().IsAdmin(ctx, int64(5), int64(1)).Return(true, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, g *dbmysql.Group) error {
				assert.Equal(t, "New", g.Name)
				return nil
			})

		require.NoError(t, svc.RenameGroup(ctx, 5, 1, "New"))
	})

	t.Run("non-admin is unauthorized", func(t *testing.T) {
		svc, repo, roster, _ := newTestService(t)

		repo.EXPECT().ActiveByID(ctx, int64(5)).Return(&dbmysql.Group{ID: 5, Active: true}, nil)
		roster.EXPECT().IsAdmin(ctx, int64(5), int64(2)).Return(false, nil)

		err := svc.RenameGroup(ctx, 5, 2, "New")
		require.ErrorIs(t, err, common.ErrUnauthorized)
	})

	t.Run("inactive group is not found", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().ActiveByID(ctx, int64(5)).Return(nil, gorm.ErrRecordNotFound)

		err := svc.RenameGroup(ctx, 5, 1, "New")
		require.ErrorIs(t, err, common.ErrGroupNotFound)
	})
}

func TestGroupService_DeactivateGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("clears active flag and releases code", func(t *testing.T) {
		svc, repo, roster, _ := newTestService(t)

		code := "1234"
		repo.EXPECT().ActiveByID(ctx, int64(5)).Return(&dbmysql.Group{ID: 5, JoinCode: &code, Active: true}, nil)
		roster.EXPECT().IsAdmin(ctx, int64(5), int64(1)).Return(true, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, g *dbmysql.Group) error {
				assert.False(t, g.Active)
				assert.Nil(t, g.JoinCode)
				return nil
			})

		require.NoError(t, svc.DeactivateGroup(ctx, 5, 1))
	})
}

func TestGroupService_PurgeGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses active group", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().ByID(ctx, int64(5)).Return(&dbmysql.Group{ID: 5, Active: true}, nil)

		err := svc.PurgeGroup(ctx, 5, 1)
		require.ErrorIs(t, err, common.ErrGroupStillActive)
	})

	t.Run("removes media then roster then group", func(t *testing.T) {
		svc, repo, roster, purger := newTestService(t)

		repo.EXPECT().ByID(ctx, int64(5)).Return(&dbmysql.Group{ID: 5, Active: false}, nil)
		roster.EXPECT().IsAdmin(ctx, int64(5), int64(1)).Return(true, nil)
		gomock.InOrder(
			purger.EXPECT().RemoveForGroup(ctx, int64(5)).Return(nil),
			roster.EXPECT().RemoveForGroup(ctx, int64(5)).Return(nil),
			repo.EXPECT().Delete(ctx, int64(5)).Return(nil),
		)

		require.NoError(t, svc.PurgeGroup(ctx, 5, 1))
	})

	t.Run("non-admin is unauthorized", func(t *testing.T) {
		svc, repo, roster, _ := newTestService(t)

		repo.EXPECT().ByID(ctx, int64(5)).Return(&dbmysql.Group{ID: 5, Active: false}, nil)
		roster.EXPECT().IsAdmin(ctx, int64(5), int64(2)).Return(false, nil)

		err := svc.PurgeGroup(ctx, 5, 2)
		require.ErrorIs(t, err, common.ErrUnauthorized)
	})
}
