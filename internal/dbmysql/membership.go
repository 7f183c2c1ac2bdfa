package dbmysql

import "time"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Membership is the roster row for one (group, user) pair. The unique index
// on the pair means a pair has exactly one row for its whole history: joining
// inserts it, leaving flips Active off, rejoining flips it back on. The store
// rejects a second writer racing the first join, which the manager reports as
// an already-member outcome.
type Membership struct {
	ID        int64     `gorm:"primaryKey;column:membership_id" json:"id"`
	GroupID   int64     `gorm:"not null;uniqueIndex:idx_group_user" json:"group_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_group_user;index" json:"user_id"`
	Role      string    `gorm:"size:10;not null;default:'member'" json:"role"`
	Active    bool      `gorm:"not null;default:true;index" json:"active"`
	JoinedAt  time.Time `json:"joined_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Membership) TableName() string {
	return "memberships"
}
