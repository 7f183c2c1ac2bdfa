package membership

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"loop/internal/common"
	"loop/internal/dbmysql"
)

type Service interface {
	Join(ctx context.Context, groupID, userID int64) (*dbmysql.Membership, error)
	Leave(ctx context.Context, groupID, userID int64) error
	IsMember(ctx context.Context, groupID, userID int64) (bool, error)
	IsAdmin(ctx context.Context, groupID, userID int64) (bool, error)
	ChangeRole(ctx context.Context, groupID, actorID, targetID int64, role string) error
	ListMembersWithProfiles(ctx context.Context, groupID int64) ([]MemberWithProfile, error)
	MemberCount(ctx context.Context, groupID int64) (int64, error)

	SeedAdmin(ctx context.Context, groupID, userID int64) (*dbmysql.Membership, error)
	RemoveForGroup(ctx context.Context, groupID int64) error
}

// GroupSource is the slice of the registry store the roster needs: lookups
// for join checks, and the update that retires a group when its sole member
// walks out.
type GroupSource interface {
	ActiveByID(ctx context.Context, id int64) (*dbmysql.Group, error)
	Update(ctx context.Context, g *dbmysql.Group) error
}

type membershipService struct {
	repo   Repository
	groups GroupSource
	bus    common.Subject
	locks  groupLocks
}

func NewMembershipService(repo Repository, groups GroupSource, bus common.Subject) Service {
	return &membershipService{repo: repo, groups: groups, bus: bus}
}

// groupLocks hands out one mutex per group id. Join and the role mutations
// are check-then-act sequences; the per-group lock is their serialization
// point inside this process, and the unique (group, user) index backs it up
// across processes.
type groupLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func (l *groupLocks) forGroup(groupID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks == nil {
		l.locks = make(map[int64]*sync.Mutex)
	}
	lock, ok := l.locks[groupID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[groupID] = lock
	}
	return lock
}

func (s *membershipService) Join(ctx context.Context, groupID, userID int64) (*dbmysql.Membership, error) {
	lock := s.locks.forGroup(groupID)
	lock.Lock()
	defer lock.Unlock()

	// Step 1: The group must exist and be active.
	g, err := s.groups.ActiveByID(ctx, groupID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrGroupNotFound
	}
	if err != nil {
		return nil, common.Upstream("group lookup", err)
	}

	// Step 2: At most one active membership per (group, user). A pair keeps
	// its single row forever, so a previous leaver rejoins by reactivation.
	existing, err := s.repo.ByGroupAndUser(ctx, groupID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.Upstream("membership lookup", err)
	}
	if existing != nil && existing.Active {
		return nil, common.ErrAlreadyMember
	}

	// Step 3: Capacity. Counted under the group lock so concurrent joins
	// cannot over-admit.
	count, err := s.repo.CountActive(ctx, groupID)
	if err != nil {
		return nil, common.Upstream("member count", err)
	}
	if count >= int64(g.MaxMembers) {
		return nil, common.ErrGroupFull
	}

	now := time.Now()
	var m *dbmysql.Membership
	if existing != nil {
		existing.Active = true
		existing.Role = dbmysql.RoleMember
		existing.JoinedAt = now
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, common.Upstream("membership update", err)
		}
		m = existing
	} else {
		m = &dbmysql.Membership{
			GroupID:  groupID,
			UserID:   userID,
			Role:     dbmysql.RoleMember,
			Active:   true,
			JoinedAt: now,
		}
		err := s.repo.Insert(ctx, m)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Another writer won the pair's row.
			return nil, common.ErrAlreadyMember
		}
		if err != nil {
			return nil, common.Upstream("membership insert", err)
		}
	}

	s.publishRosterChanged(groupID, userID, "joined")
	return m, nil
}

// Leave deactivates the caller's own membership. The last active admin may
// not leave; deactivating the whole group is the way out of that corner.
func (s *membershipService) Leave(ctx context.Context, groupID, userID int64) error {
	lock := s.locks.forGroup(groupID)
	lock.Lock()
	defer lock.Unlock()

	m, err := s.repo.ByGroupAndUser(ctx, groupID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrMemberNotFound
	}
	if err != nil {
		return common.Upstream("membership lookup", err)
	}
	if !m.Active {
		return common.ErrMemberNotFound
	}

	retireGroup := false
	if m.Role == dbmysql.RoleAdmin {
		admins, err := s.repo.CountActiveAdmins(ctx, groupID)
		if err != nil {
			return common.Upstream("admin count", err)
		}
		if admins <= 1 {
			members, err := s.repo.CountActive(ctx, groupID)
			if err != nil {
				return common.Upstream("member count", err)
			}
			if members > 1 {
				return common.ErrLastAdmin
			}
			// Sole member walking out: the group retires with them.
			retireGroup = true
		}
	}

	m.Active = false
	if err := s.repo.Update(ctx, m); err != nil {
		return common.Upstream("membership update", err)
	}

	if retireGroup {
		g, err := s.groups.ActiveByID(ctx, groupID)
		if err == nil {
			g.Active = false
			g.JoinCode = nil
			if err := s.groups.Update(ctx, g); err != nil {
				return common.Upstream("group update", err)
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return common.Upstream("group lookup", err)
		}
	}

	s.publishRosterChanged(groupID, userID, "left")
	return nil
}

func (s *membershipService) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	m, err := s.repo.ByGroupAndUser(ctx, groupID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, common.Upstream("membership lookup", err)
	}
	return m.Active, nil
}

func (s *membershipService) IsAdmin(ctx context.Context, groupID, userID int64) (bool, error) {
	m, err := s.repo.ByGroupAndUser(ctx, groupID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, common.Upstream("membership lookup", err)
	}
	return m.Active && m.Role == dbmysql.RoleAdmin, nil
}

// ChangeRole promotes or demotes a member. Admin-only; demoting the last
// admin is refused so the group keeps an authority.
func (s *membershipService) ChangeRole(ctx context.Context, groupID, actorID, targetID int64, role string) error {
	if role != dbmysql.RoleAdmin && role != dbmysql.RoleMember {
		return errors.New("invalid role")
	}

	lock := s.locks.forGroup(groupID)
	lock.Lock()
	defer lock.Unlock()

	admin, err := s.IsAdmin(ctx, groupID, actorID)
	if err != nil {
		return err
	}
	if !admin {
		return common.ErrUnauthorized
	}

	target, err := s.repo.ByGroupAndUser(ctx, groupID, targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrMemberNotFound
	}
	if err != nil {
		return common.Upstream("membership lookup", err)
	}
	if !target.Active {
		return common.ErrMemberNotFound
	}
	if target.Role == role {
		return nil
	}

	if target.Role == dbmysql.RoleAdmin && role == dbmysql.RoleMember {
		admins, err := s.repo.CountActiveAdmins(ctx, groupID)
		if err != nil {
			return common.Upstream("admin count", err)
		}
		if admins <= 1 {
			return common.ErrLastAdmin
		}
	}

	target.Role = role
	if err := s.repo.Update(ctx, target); err != nil {
		return common.Upstream("membership update", err)
	}

	s.publishRosterChanged(groupID, actorID, "role_changed")
	return nil
}

func (s *membershipService) ListMembersWithProfiles(ctx context.Context, groupID int64) ([]MemberWithProfile, error) {
	members, err := s.repo.ListActiveWithUsers(ctx, groupID)
	if err != nil {
		return nil, common.Upstream("roster list", err)
	}
	return members, nil
}

func (s *membershipService) MemberCount(ctx context.Context, groupID int64) (int64, error) {
	count, err := s.repo.CountActive(ctx, groupID)
	if err != nil {
		return 0, common.Upstream("member count", err)
	}
	return count, nil
}

// SeedAdmin inserts the creator's admin row during group creation. Capacity
// is not checked; the creator is always the first member.
func (s *membershipService) SeedAdmin(ctx context.Context, groupID, userID int64) (*dbmysql.Membership, error) {
	m := &dbmysql.Membership{
		GroupID:  groupID,
		UserID:   userID,
		Role:     dbmysql.RoleAdmin,
		Active:   true,
		JoinedAt: time.Now(),
	}
	if err := s.repo.Insert(ctx, m); err != nil {
		return nil, common.Upstream("membership insert", err)
	}
	return m, nil
}

func (s *membershipService) RemoveForGroup(ctx context.Context, groupID int64) error {
	if err := s.repo.DeleteByGroup(ctx, groupID); err != nil {
		return common.Upstream("membership delete", err)
	}
	return nil
}

func (s *membershipService) publishRosterChanged(groupID, actorID int64, change string) {
	s.bus.PublishAsync(common.GroupEvent{
		Type:       common.RosterChangedType,
		GroupID:    groupID,
		ActorID:    actorID,
		OccurredAt: time.Now(),
		Metadata:   common.EventMetadata{"change": change},
	})
}
