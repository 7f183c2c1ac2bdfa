package media

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"loop/internal/common"
	"loop/internal/config"
	"loop/internal/dbmongo"
	"loop/internal/dbmysql"
)

type Service interface {
	Upload(ctx context.Context, req UploadRequest) (*dbmysql.Media, error)
	List(ctx context.Context, groupID, requesterID int64, limit int) ([]dbmysql.Media, error)
	PublicURL(storagePath string) string
	ToggleLike(ctx context.Context, mediaID, userID int64) (bool, error)
	LikeCount(ctx context.Context, mediaID int64) (int64, error)

	RemoveForGroup(ctx context.Context, groupID int64) error
}

// BlobStore is the object-store boundary: put/delete by path. Public URLs
// are derived locally, no round trip.
type BlobStore interface {
	Put(ctx context.Context, path, contentType string, uploaderID int64, data []byte) (*dbmongo.StoredBlob, error)
	Delete(ctx context.Context, path string) error
}

// Roster answers membership questions; the catalog treats it as read-only.
type Roster interface {
	IsMember(ctx context.Context, groupID, userID int64) (bool, error)
}

type UploadRequest struct {
	GroupID       int64
	UploaderID    int64
	Data          []byte
	FileExtension string
	Kind          common.MediaKind
	Caption       string
	Thumbnail     []byte
}

type mediaService struct {
	repo   Repository
	blobs  BlobStore
	roster Roster
	bus    common.Subject
	cfg    *config.Config
}

func NewMediaService(repo Repository, blobs BlobStore, roster Roster, bus common.Subject, cfg *config.Config) Service {
	return &mediaService{repo: repo, blobs: blobs, roster: roster, bus: bus, cfg: cfg}
}

// Upload stores the asset first and commits the catalog row last, so no row
// ever points at a blob that was not stored. The reverse failure, a stored
// blob with no row, is an invisible orphan and is reported, not rolled back.
func (s *mediaService) Upload(ctx context.Context, req UploadRequest) (*dbmysql.Media, error) {
	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("invalid media kind %q", req.Kind)
	}
	if err := common.ValidateCaption(req.Caption); err != nil {
		return nil, err
	}
	if len(req.Data) == 0 {
		return nil, errors.New("empty upload")
	}
	if int64(len(req.Data)) > s.cfg.Media.MaxUploadBytes {
		return nil, errors.New("upload exceeds size limit")
	}

	member, err := s.roster.IsMember(ctx, req.GroupID, req.UploaderID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, common.ErrUnauthorized
	}

	ext := normalizeExtension(req.FileExtension)
	path := fmt.Sprintf("groups/%d/%s%s", req.GroupID, uuid.NewString(), ext)
	contentType := common.ContentTypeForExtension(ext)

	// Step 1: Primary asset.
	if _, err := s.blobs.Put(ctx, path, contentType, req.UploaderID, req.Data); err != nil {
		return nil, common.Upstream("blob put", err)
	}

	// Step 2: Thumbnail at the sibling path. Images get a derived one when
	// the caller did not send any.
	thumb := req.Thumbnail
	if thumb == nil && req.Kind == common.MediaKindImage {
		derived, derr := deriveThumbnail(req.Data, s.cfg.Media.ThumbnailWidth)
		if derr != nil {
			log.Printf("thumbnail derivation skipped for %s: %v", path, derr)
		} else {
			thumb = derived
		}
	}

	var thumbnailPath *string
	if thumb != nil {
		tp := thumbPathFor(path, ext)
		if _, err := s.blobs.Put(ctx, tp, "image/jpeg", req.UploaderID, thumb); err != nil {
			return nil, &common.PartialUploadError{StoragePath: path, Err: err}
		}
		thumbnailPath = &tp
	}

	// Step 3: Catalog row.
	m := &dbmysql.Media{
		GroupID:       req.GroupID,
		UploaderID:    req.UploaderID,
		StoragePath:   path,
		ThumbnailPath: thumbnailPath,
		Kind:          req.Kind.String(),
		CreatedAt:     time.Now(),
	}
	if req.Caption != "" {
		caption := req.Caption
		m.Caption = &caption
	}
	if err := s.repo.Insert(ctx, m); err != nil {
		perr := &common.PartialUploadError{StoragePath: path, Err: err}
		if thumbnailPath != nil {
			perr.ThumbnailPath = *thumbnailPath
		}
		return nil, perr
	}

	s.bus.PublishAsync(common.GroupEvent{
		Type:       common.MediaAddedType,
		GroupID:    req.GroupID,
		ActorID:    req.UploaderID,
		MediaID:    &m.ID,
		OccurredAt: time.Now(),
	})

	return m, nil
}

// List returns a group's media most recent first, always bounded.
func (s *mediaService) List(ctx context.Context, groupID, requesterID int64, limit int) ([]dbmysql.Media, error) {
	member, err := s.roster.IsMember(ctx, groupID, requesterID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, common.ErrUnauthorized
	}

	if limit <= 0 {
		limit = s.cfg.Media.DefaultPageSize
	}
	if limit > s.cfg.Media.MaxPageSize {
		limit = s.cfg.Media.MaxPageSize
	}

	items, err := s.repo.ListByGroup(ctx, groupID, limit)
	if err != nil {
		return nil, common.Upstream("media list", err)
	}
	return items, nil
}

func (s *mediaService) PublicURL(storagePath string) string {
	return fmt.Sprintf("%s%s", s.cfg.Media.BaseURL, storagePath)
}

// ToggleLike flips the caller's like: deliberately toggle semantics, two
// calls in a row restore the original state.
func (s *mediaService) ToggleLike(ctx context.Context, mediaID, userID int64) (bool, error) {
	m, err := s.repo.ByID(ctx, mediaID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, common.ErrMediaNotFound
	}
	if err != nil {
		return false, common.Upstream("media lookup", err)
	}

	member, err := s.roster.IsMember(ctx, m.GroupID, userID)
	if err != nil {
		return false, err
	}
	if !member {
		return false, common.ErrUnauthorized
	}

	removed, err := s.repo.DeleteLike(ctx, mediaID, userID)
	if err != nil {
		return false, common.Upstream("like delete", err)
	}

	liked := false
	if !removed {
		err := s.repo.InsertLike(ctx, &dbmysql.Like{
			MediaID:   mediaID,
			UserID:    userID,
			CreatedAt: time.Now(),
		})
		if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, common.Upstream("like insert", err)
		}
		liked = true
	}

	s.bus.PublishAsync(common.GroupEvent{
		Type:       common.MediaLikeChangedType,
		GroupID:    m.GroupID,
		ActorID:    userID,
		MediaID:    &mediaID,
		OccurredAt: time.Now(),
		Metadata:   common.EventMetadata{"liked": liked},
	})

	return liked, nil
}

func (s *mediaService) LikeCount(ctx context.Context, mediaID int64) (int64, error) {
	count, err := s.repo.CountLikes(ctx, mediaID)
	if err != nil {
		return 0, common.Upstream("like count", err)
	}
	return count, nil
}

// RemoveForGroup hard-deletes a group's media: blobs best effort, then the
// likes, then the rows. Blob orphans from partial failures stay invisible.
func (s *mediaService) RemoveForGroup(ctx context.Context, groupID int64) error {
	items, err := s.repo.ListByGroupAll(ctx, groupID)
	if err != nil {
		return common.Upstream("media list", err)
	}

	for _, item := range items {
		if err := s.blobs.Delete(ctx, item.StoragePath); err != nil {
			log.Printf("blob delete failed for %s: %v", item.StoragePath, err)
		}
		if item.ThumbnailPath != nil {
			if err := s.blobs.Delete(ctx, *item.ThumbnailPath); err != nil {
				log.Printf("blob delete failed for %s: %v", *item.ThumbnailPath, err)
			}
		}
	}

	if err := s.repo.DeleteLikesByGroup(ctx, groupID); err != nil {
		return common.Upstream("like delete", err)
	}
	if err := s.repo.DeleteByGroup(ctx, groupID); err != nil {
		return common.Upstream("media delete", err)
	}
	return nil
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func thumbPathFor(path, ext string) string {
	return strings.TrimSuffix(path, ext) + "_thumb.jpg"
}
