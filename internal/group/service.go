package group

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"loop/internal/common"
	"loop/internal/dbmysql"
)

// codeAttempts bounds the birthday-problem retry loop for join codes. The
// active-code space is sparse relative to the 10,000 possibilities, so
// exhausting the bound means something is badly wrong.
const codeAttempts = 50

type Service interface {
	CreateGroup(ctx context.Context, creatorID int64, name string, maxMembers int, avatarPath *string) (*dbmysql.Group, error)
	GetGroup(ctx context.Context, id int64) (*dbmysql.Group, error)
	FindGroupByCode(ctx context.Context, code string) (*dbmysql.Group, error)
	RenameGroup(ctx context.Context, groupID, actorID int64, name string) error
	UpdateAvatar(ctx context.Context, groupID, actorID int64, avatarPath string) error
	DeactivateGroup(ctx context.Context, groupID, actorID int64) error
	PurgeGroup(ctx context.Context, groupID, actorID int64) error
}

// Roster is the slice of the membership manager the registry needs: seeding
// the creator's admin row, authorization checks, and purge support.
type Roster interface {
	SeedAdmin(ctx context.Context, groupID, userID int64) (*dbmysql.Membership, error)
	IsAdmin(ctx context.Context, groupID, userID int64) (bool, error)
	RemoveForGroup(ctx context.Context, groupID int64) error
}

// MediaPurger removes a group's catalog rows and blobs during a purge.
type MediaPurger interface {
	RemoveForGroup(ctx context.Context, groupID int64) error
}

type groupService struct {
	repo   Repository
	roster Roster
	media  MediaPurger
	bus    common.Subject
}

func NewGroupService(repo Repository, roster Roster, media MediaPurger, bus common.Subject) Service {
	return &groupService{repo: repo, roster: roster, media: media, bus: bus}
}

func (s *groupService) CreateGroup(ctx context.Context, creatorID int64, name string, maxMembers int, avatarPath *string) (*dbmysql.Group, error) {
	if err := common.ValidateGroupName(name); err != nil {
		return nil, err
	}
	if maxMembers <= 0 {
		maxMembers = dbmysql.DefaultMaxMembers
	}

	// Step 1: Persist the group row. The unique index on join_code is the
	// collision check, so each attempt is a single insert.
	var g *dbmysql.Group
	allocated := false
	for attempt := 0; attempt < codeAttempts; attempt++ {
		code := randomJoinCode()
		g = &dbmysql.Group{
			Name:       name,
			JoinCode:   &code,
			CreatorID:  creatorID,
			MaxMembers: maxMembers,
			AvatarPath: avatarPath,
			Active:     true,
		}
		err := s.repo.Create(ctx, g)
		if err == nil {
			allocated = true
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return nil, common.Upstream("group insert", err)
	}
	if !allocated {
		return nil, common.ErrCodeSpaceExhausted
	}

	// Step 2: Seed the creator as the first admin. There is no multi-row
	// transaction under us, so a failure here leaves an orphaned group row
	// that the caller must compensate for.
	if _, err := s.roster.SeedAdmin(ctx, g.ID, creatorID); err != nil {
		return nil, &common.PartialCreateError{GroupID: g.ID, Err: err}
	}

	s.bus.PublishAsync(common.GroupEvent{
		Type:       common.RosterChangedType,
		GroupID:    g.ID,
		ActorID:    creatorID,
		OccurredAt: time.Now(),
	})

	return g, nil
}

func (s *groupService) GetGroup(ctx context.Context, id int64) (*dbmysql.Group, error) {
	g, err := s.repo.ByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrGroupNotFound
	}
	if err != nil {
		return nil, common.Upstream("group lookup", err)
	}
	return g, nil
}

func (s *groupService) FindGroupByCode(ctx context.Context, code string) (*dbmysql.Group, error) {
	if err := common.ValidateJoinCode(code); err != nil {
		return nil, common.ErrGroupNotFound
	}
	g, err := s.repo.ActiveByCode(ctx, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrGroupNotFound
	}
	if err != nil {
		return nil, common.Upstream("group lookup", err)
	}
	return g, nil
}

func (s *groupService) RenameGroup(ctx context.Context, groupID, actorID int64, name string) error {
	if err := common.ValidateGroupName(name); err != nil {
		return err
	}
	g, err := s.activeGroupForAdmin(ctx, groupID, actorID)
	if err != nil {
		return err
	}

	g.Name = name
	g.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, g); err != nil {
		return common.Upstream("group update", err)
	}

	s.publishProfileChanged(groupID, actorID, "renamed")
	return nil
}

func (s *groupService) UpdateAvatar(ctx context.Context, groupID, actorID int64, avatarPath string) error {
	g, err := s.activeGroupForAdmin(ctx, groupID, actorID)
	if err != nil {
		return err
	}

	g.AvatarPath = &avatarPath
	g.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, g); err != nil {
		return common.Upstream("group update", err)
	}

	s.publishProfileChanged(groupID, actorID, "avatar_updated")
	return nil
}

// DeactivateGroup soft-deletes: the active flag is cleared and the join code
// released, but memberships and media rows stay put for historical reads.
func (s *groupService) DeactivateGroup(ctx context.Context, groupID, actorID int64) error {
	g, err := s.activeGroupForAdmin(ctx, groupID, actorID)
	if err != nil {
		return err
	}

	g.Active = false
	g.JoinCode = nil
	g.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, g); err != nil {
		return common.Upstream("group update", err)
	}

	s.publishProfileChanged(groupID, actorID, "deactivated")
	return nil
}

// PurgeGroup is the explicit administrative hard delete. The group must
// already be deactivated; blobs, catalog rows, likes and memberships all go.
func (s *groupService) PurgeGroup(ctx context.Context, groupID, actorID int64) error {
	g, err := s.repo.ByID(ctx, groupID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrGroupNotFound
	}
	if err != nil {
		return common.Upstream("group lookup", err)
	}
	if g.Active {
		return common.ErrGroupStillActive
	}

	admin, err := s.roster.IsAdmin(ctx, groupID, actorID)
	if err != nil {
		return err
	}
	if !admin {
		return common.ErrUnauthorized
	}

	if err := s.media.RemoveForGroup(ctx, groupID); err != nil {
		return err
	}
	if err := s.roster.RemoveForGroup(ctx, groupID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, groupID); err != nil {
		return common.Upstream("group delete", err)
	}

	s.publishProfileChanged(groupID, actorID, "purged")
	return nil
}

func (s *groupService) activeGroupForAdmin(ctx context.Context, groupID, actorID int64) (*dbmysql.Group, error) {
	g, err := s.repo.ActiveByID(ctx, groupID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrGroupNotFound
	}
	if err != nil {
		return nil, common.Upstream("group lookup", err)
	}

	admin, err := s.roster.IsAdmin(ctx, groupID, actorID)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, common.ErrUnauthorized
	}
	return g, nil
}

func (s *groupService) publishProfileChanged(groupID, actorID int64, change string) {
	s.bus.PublishAsync(common.GroupEvent{
		Type:       common.GroupProfileChangedType,
		GroupID:    groupID,
		ActorID:    actorID,
		OccurredAt: time.Now(),
		Metadata:   common.EventMetadata{"change": change},
	})
}

func randomJoinCode() string {
	return fmt.Sprintf("%04d", rand.Intn(10000))
}
