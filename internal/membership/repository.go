package membership

import (
	"context"

	"gorm.io/gorm"

	"loop/internal/dbmysql"
)

// MemberWithProfile pairs a roster row with the profile it displays as.
type MemberWithProfile struct {
	Membership dbmysql.Membership
	User       dbmysql.User
}

type Repository interface {
	Insert(ctx context.Context, m *dbmysql.Membership) error
	ByGroupAndUser(ctx context.Context, groupID, userID int64) (*dbmysql.Membership, error)
	Update(ctx context.Context, m *dbmysql.Membership) error
	CountActive(ctx context.Context, groupID int64) (int64, error)
	CountActiveAdmins(ctx context.Context, groupID int64) (int64, error)
	ListActiveWithUsers(ctx context.Context, groupID int64) ([]MemberWithProfile, error)
	DeleteByGroup(ctx context.Context, groupID int64) error
}

type membershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) Repository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Insert(ctx context.Context, m *dbmysql.Membership) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *membershipRepository) ByGroupAndUser(ctx context.Context, groupID, userID int64) (*dbmysql.Membership, error) {
	var m dbmysql.Membership
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *membershipRepository) Update(ctx context.Context, m *dbmysql.Membership) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *membershipRepository) CountActive(ctx context.Context, groupID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Membership{}).
		Where("group_id = ? AND active = ?", groupID, true).
		Count(&count).Error
	return count, err
}

func (r *membershipRepository) CountActiveAdmins(ctx context.Context, groupID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Membership{}).
		Where("group_id = ? AND role = ? AND active = ?", groupID, dbmysql.RoleAdmin, true).
		Count(&count).Error
	return count, err
}

// ListActiveWithUsers returns the active roster oldest member first.
func (r *membershipRepository) ListActiveWithUsers(ctx context.Context, groupID int64) ([]MemberWithProfile, error) {
	var memberships []dbmysql.Membership
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND active = ?", groupID, true).
		Order("joined_at ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}

	result := make([]MemberWithProfile, 0, len(memberships))
	for _, m := range memberships {
		var u dbmysql.User
		if err := r.db.WithContext(ctx).First(&u, "user_id = ?", m.UserID).Error; err != nil {
			return nil, err
		}
		result = append(result, MemberWithProfile{Membership: m, User: u})
	}
	return result, nil
}

func (r *membershipRepository) DeleteByGroup(ctx context.Context, groupID int64) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.Membership{}, "group_id = ?", groupID).Error
}
