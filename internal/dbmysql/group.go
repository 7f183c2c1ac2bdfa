package dbmysql

import "time"

const DefaultMaxMembers = 6

// Group owns its join code and capacity. JoinCode is nullable so the unique
// index only binds active groups: deactivation clears the code, which frees
// it for reuse by a later group.
type Group struct {
	ID         int64     `gorm:"primaryKey;column:group_id" json:"id"`
	Name       string    `gorm:"size:60;not null" json:"name"`
	JoinCode   *string   `gorm:"size:4;uniqueIndex" json:"join_code,omitempty"`
	CreatorID  int64     `gorm:"not null;index" json:"creator_id"`
	MaxMembers int       `gorm:"not null;default:6" json:"max_members"`
	AvatarPath *string   `gorm:"size:255" json:"avatar_path,omitempty"`
	Active     bool      `gorm:"not null;default:true;index" json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Group) TableName() string {
	return "groups"
}
