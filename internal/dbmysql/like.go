package dbmysql

import "time"

// Like is one user's like on one media item. The unique pair index is the
// serialization point for racing toggles by the same user.
type Like struct {
	ID        int64     `gorm:"primaryKey;column:like_id" json:"id"`
	MediaID   int64     `gorm:"not null;uniqueIndex:idx_media_user" json:"media_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_media_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
