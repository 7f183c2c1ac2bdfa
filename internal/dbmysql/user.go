package dbmysql

import "time"

// User is the profile surface the membership roster needs for display. The
// identity provider owns phone verification; this table only mirrors the
// stable identifier and display fields.
type User struct {
	ID         int64     `gorm:"primaryKey;column:user_id" json:"id"`
	Phone      string    `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Name       string    `gorm:"size:60" json:"name"`
	AvatarPath *string   `gorm:"size:255" json:"avatar_path,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
