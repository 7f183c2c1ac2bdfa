package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"loop/internal/common"
	"loop/internal/config"
	"loop/internal/dbmongo"
	"loop/internal/dbmysql"
)

type nopBus struct{}

func (nopBus) Subscribe(common.Observer)      {}
func (nopBus) Unsubscribe(common.Observer)    {}
func (nopBus) Publish(common.GroupEvent)      {}
func (nopBus) PublishAsync(common.GroupEvent) {}

func testConfig() *config.Config {
	return &config.Config{
		Media: config.MediaConfig{
			BaseURL:         "http://localhost:7002/media/",
			MaxUploadBytes:  1 << 20,
			DefaultPageSize: 30,
			MaxPageSize:     100,
			ThumbnailWidth:  320,
		},
	}
}

func newTestService(t *testing.T) (Service, *MockRepository, *MockBlobStore, *MockRoster) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := NewMockRepository(ctrl)
	blobs := NewMockBlobStore(ctrl)
	roster := NewMockRoster(ctrl)
	svc := NewMediaService(repo, blobs, roster, nopBus{}, testConfig())
	return svc, repo, blobs, roster
}

// tinyPNG returns a valid encoded image so thumbnail derivation succeeds.
func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func storedBlob(path string) *dbmongo.StoredBlob {
	return &dbmongo.StoredBlob{Path: path}
}

func TestMediaService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("stores blob and thumbnail before the catalog row", func(t *testing.T) {
		svc, repo, blobs, roster := newTestService(t)

		roster.EXPECT().IsMember(ctx, int64(1), int64(2)).Return(true, nil)

		var primaryPath string
		primary := blobs.EXPECT().Put(ctx, gomock.Any(), "video/mp4", int64(2), []byte("frames")).DoAndReturn(
			func(_ context.Context, path, _ string, _ int64, _ []byte) (*dbmongo.StoredBlob, error) {
				primaryPath = path
				return storedBlob(path), nil
			})
		thumb := blobs.EXPECT().Put(ctx, gomock.Any(), "image/jpeg", int64(2), []byte("still")).DoAndReturn(
			func(_ context.Context, path, _ string, _ int64, _ []byte) (*dbmongo.StoredBlob, error) {
				return storedBlob(path), nil
			})
		insert := repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, m *dbmysql.Media) error {
				m.ID = 7
				return nil
			})
		gomock.InOrder(primary, thumb, insert)

		m, err := svc.Upload(ctx, UploadRequest{
			GroupID:       1,
			UploaderID:    2,
			Data:          []byte("frames"),
			FileExtension: "mp4",
			Kind:          common.MediaKindVideo,
			Caption:       "sunset",
			Thumbnail:     []byte("still"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), m.ID)
		assert.Equal(t, primaryPath, m.StoragePath)
		assert.True(t, strings.HasPrefix(m.StoragePath, "groups/1/"))
		assert.True(t, strings.HasSuffix(m.StoragePath, ".mp4"))
		require.NotNil(t, m.ThumbnailPath)
		assert.True(t, strings.HasSuffix(*m.ThumbnailPath, "_thumb.jpg"))
		require.NotNil(t, m.Caption)
		assert.Equal(t, "sunset", *m.Caption)
	})

	t.Run("derives a thumbnail for images", func(t *testing.T) {
		svc, repo, blobs, roster := newTestService(t)

		data := tinyPNG(t)
		roster.EXPECT().IsMember(ctx, int64(1), int64(2)).Return(true, nil)
		blobs.EXPECT().Put(ctx, gomock.Any(), "image/png", int64(2), data).DoAndReturn(
			func(_ context.Context, path, _ string, _ int64, _ []byte) (*dbmongo.StoredBlob, error) {
				return storedBlob(path), nil
			})
		blobs.EXPECT().Put(ctx, gomock.Any(), "image/jpeg", int64(2), gomock.Any()).DoAndReturn(
			func(_ context.Context, path, _ string, _ int64, derived []byte) (*dbmongo.StoredBlob, error) {
				assert.NotEmpty(t, derived)
				return storedBlob(path), nil
			})
		repo.EXPECT().Insert(ctx, gomock.Any()).Return(nil)

		m, err := svc.Upload(ctx, UploadRequest{
			GroupID:       1,
			UploaderID:    2,
			Data:          data,
			FileExtension: ".png",
			Kind:          common.MediaKindImage,
		})
		require.NoError(t, err)
		require.NotNil(t, m.ThumbnailPath)
	})

	t.Run("undecodable image skips the thumbnail", func(t *testing.T) {
		svc, repo, blobs, roster := newTestService(t)

		roster.EXPECT().IsMember(ctx, int64(1), int64(2)).Return(true, nil)
		blobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), int64(2), gomock.Any()).Return(storedBlob("p"), nil)
		repo.EXPECT().Insert(ctx, gomock.Any()).Return(nil)

		m, err := svc.Upload(ctx, UploadRequest{
			GroupID:       1,
			UploaderID:    2,
			Data:          []byte("not an image"),
			FileExtension: "jpg",
			Kind:          common.MediaKindImage,
		})
		require.NoError(t, err)
		assert.Nil(t, m.ThumbnailPath)
	})

	t.Run("non-member is rejected before any storage write", func(t *testing.T) {
		svc, _, _, roster := newTestService(t)

		roster.EXPECT().IsMember(ctx, int64(1), int64(9)).Return(false, nil)

		_, err := svc.Upload(ctx, UploadRequest{
			GroupID:    1,
			UploaderID: 9,
			Data:       []byte("x"),
			Kind:       common.MediaKindImage,
		})
		require.ErrorIs(t, err, common.ErrUnauthorized)
	})

	t.Run("primary blob failure leaves no catalog row", func(t *testing.T) {
		svc, _, blobs, roster := newTestService(t)

		roster.EXPECT().IsMember(ctx, int64(1), int64(2)).Return(true, nil)
		blobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), int64(2), gomock.Any()).
			Return(nil, errors.New("gridfs down"))

		_, err := svc.Upload(ctx, UploadRequest{
			GroupID:    1,
			UploaderID: 2,
			Data:       []byte("x"),
			Kind:       common.MediaKindVideo,
		})
		var up *common.UpstreamError
		require.ErrorAs(t, err, &up)
	})

	t.Run("thumbnail failure reports the stored primary", func(t *testing.T) {
		svc, _, blobs, roster := newTestService(t)

		roster.EXPECT().IsMember(ctx, int64(1), int64(2)).Return(true, nil)
		blobs.EXPECT().Put(ctx, gomock.Any(), "video/mp4", int64(2), gomock.Any()).DoAndReturn(
			func(_ context.Context, path, _ string, _ int64, _ []byte) (*dbmongo.StoredBlob, error) {
				return storedBlob(path), nil
			})
		blobs.EXPECT().Put(ctx, gomock.Any(), "image/jpeg", int64(2), gomock.Any()).
			Return(nil, errors.New("gridfs down"))

		_, err := svc.Upload(ctx, UploadRequest{
			GroupID:       1,
			UploaderID:    2,
			Data:          []byte("frames"),
			FileExtension: "mp4",
			Kind:          common.MediaKindVideo,
			Thumbnail:     []byte("still"),
		})
		var partial *common.PartialUploadError
		require.ErrorAs(t, err, &partial)
		assert.NotEmpty(t, partial.StoragePath)
		assert.Empty(t, partial.ThumbnailPath)
	})

	t.Run("catalog insert failure reports both stored paths", func(t *testing.T) {
		svc, repo, blobs, roster := newTestService(t)

		roster.EXPECT().IsMember(ctx, int64(1), int64(2)).Return(true, nil)
		blobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), int64(2), gomock.Any()).DoAndReturn(
			func(_ context.Context, path, _ string, _ int64, _ []byte) (*dbmongo.StoredBlob, error) {
				return storedBlob(path), nil
			}).Times(2)
		repo.EXPECT().Insert(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := svc.Upload(ctx, UploadRequest{
			GroupID:       1,
			UploaderID:    2,
			Data:          []byte("frames"),
			FileExtension: "mp4",
			Kind:          common.MediaKindVideo,
			Thumbnail:     []byte("still"),
		})
		var partial *common.PartialUploadError
		require.ErrorAs(t, err, &partial)
		assert.NotEmpty(t, partial.StoragePath)
		assert.NotEmpty(t, partial.ThumbnailPath)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		_, err := svc.Upload(ctx, UploadRequest{GroupID: 1, UploaderID: 2, Data: []byte("x"), Kind: "document"})
		require.Error(t, err)

		_, err = svc.Upload(ctx, UploadRequest{GroupID: 1, UploaderID: 2, Kind: common.MediaKindImage})
		require.Error(t, err)

		_, err = svc.Upload(ctx, UploadRequest{
			GroupID: 1, UploaderID: 2, Kind: common.MediaKindImage,
			Data: make([]byte, (1<<20)+1),
		})
		require.Error(t, err)

		_, err = svc.Upload(ctx, UploadRequest{
			GroupID: 1, UploaderID: 2, Kind: common.MediaKindImage,
			Data: []byte("x"), Caption: strings.Repeat("a", common.MaxCaptionLength+1),
		})
		require.Error(t, err)
	})
}

func TestMediaService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("bounds the limit", func(t *testing.T) {
		for _, tc := range []struct {
			requested int
			effective int
		}{
			{0, 30},
			{-5, 30},
			{10, 10},
			{500, 100},
		} {
			svc, repo, _, roster := newTestService(t)

			roster.EXPECT().IsMember(ctx, int64(1), int64(2)).Return(true, nil)
			repo.EXPECT().ListByGroup(ctx, int64(1), tc.effective).Return([]dbmysql.Media{}, nil)

			_, err := svc.List(ctx, 1, 2, tc.requested)
			require.NoError(t, err, "requested limit %d", tc.requested)
		}
	})

	t.Run("non-member is rejected", func(t *testing.T) {
		svc, _, _, roster := newTestService(t)

		roster.EXPECT().IsMember(ctx, int64(1), int64(9)).Return(false, nil)

		_, err := svc.List(ctx, 1, 9, 10)
		require.ErrorIs(t, err, common.ErrUnauthorized)
	})
}

func TestMediaService_PublicURL(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	url := svc.PublicURL("groups/1/abc.jpg")
	assert.Equal(t, "http://localhost:7002/media/groups/1/abc.jpg", url)
}

func TestMediaService_ToggleLike(t *testing.T) {
	ctx := context.Background()

	t.Run("two toggles restore the original state", func(t *testing.T) {
		svc, repo, _, roster := newTestService(t)

		repo.EXPECT().ByID(ctx, int64(5)).Return(&dbmysql.Media{ID: 5, GroupID: 1}, nil).Times(2)
		roster.EXPECT().IsMember(ctx, int64(1), int64(2)).Return(true, nil).Times(2)

		liked := false
		repo.EXPECT().DeleteLike(ctx, int64(5), int64(2)).DoAndReturn(
			func(_ context.Context, _, _ int64) (bool, error) {
				removed := liked
				liked = false
				return removed, nil
			}).Times(2)
		repo.EXPECT().InsertLike(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, l *dbmysql.Like) error {
				liked = true
				return nil
			})

		state, err := svc.ToggleLike(ctx, 5, 2)
		require.NoError(t, err)
		assert.True(t, state)

		state, err = svc.ToggleLike(ctx, 5, 2)
		require.NoError(t, err)
		assert.False(t, state)
		assert.False(t, liked)
	})

	t.Run("missing media", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().ByID(ctx, int64(5)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.ToggleLike(ctx, 5, 2)
		require.ErrorIs(t, err, common.ErrMediaNotFound)
	})

	t.Run("non-member cannot like", func(t *testing.T) {
		svc, repo, _, roster := newTestService(t)

		repo.EXPECT().ByID(ctx, int64(5)).Return(&dbmysql.Media{ID: 5, GroupID: 1}, nil)
		roster.EXPECT().IsMember(ctx, int64(1), int64(9)).Return(false, nil)

		_, err := svc.ToggleLike(ctx, 5, 9)
		require.ErrorIs(t, err, common.ErrUnauthorized)
	})

	t.Run("racing double insert still reports liked", func(t *testing.T) {
		svc, repo, _, roster := newTestService(t)

		repo.EXPECT().ByID(ctx, int64(5)).Return(&dbmysql.Media{ID: 5, GroupID: 1}, nil)
		roster.EXPECT().IsMember(ctx, int64(1), int64(2)).Return(true, nil)
		repo.EXPECT().DeleteLike(ctx, int64(5), int64(2)).Return(false, nil)
		repo.EXPECT().InsertLike(ctx, gomock.Any()).Return(gorm.ErrDuplicatedKey)

		state, err := svc.ToggleLike(ctx, 5, 2)
		require.NoError(t, err)
		assert.True(t, state)
	})
}

func TestMediaService_LikeCount(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestService(t)

	repo.EXPECT().CountLikes(ctx, int64(5)).Return(int64(3), nil)

	count, err := svc.LikeCount(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestMediaService_RemoveForGroup(t *testing.T) {
	ctx := context.Background()
	svc, repo, blobs, _ := newTestService(t)

	thumb := "groups/1/b_thumb.jpg"
	repo.EXPECT().ListByGroupAll(ctx, int64(1)).Return([]dbmysql.Media{
		{ID: 1, GroupID: 1, StoragePath: "groups/1/a.mp4"},
		{ID: 2, GroupID: 1, StoragePath: "groups/1/b.jpg", ThumbnailPath: &thumb},
	}, nil)
	// One blob delete failing must not stop the sweep.
	blobs.EXPECT().Delete(ctx, "groups/1/a.mp4").Return(errors.New("gone already"))
	blobs.EXPECT().Delete(ctx, "groups/1/b.jpg").Return(nil)
	blobs.EXPECT().Delete(ctx, thumb).Return(nil)
	likes := repo.EXPECT().DeleteLikesByGroup(ctx, int64(1)).Return(nil)
	rows := repo.EXPECT().DeleteByGroup(ctx, int64(1)).Return(nil)
	gomock.InOrder(likes, rows)

	require.NoError(t, svc.RemoveForGroup(ctx, 1))
}
