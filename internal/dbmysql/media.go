package dbmysql

import "time"

// Media is a catalog row pointing at blobs already stored in the object
// store. Rows are immutable after insert; only likes change around them.
type Media struct {
	ID            int64     `gorm:"primaryKey;column:media_id" json:"id"`
	GroupID       int64     `gorm:"not null;index:idx_media_group_created" json:"group_id"`
	UploaderID    int64     `gorm:"not null;index" json:"uploader_id"`
	StoragePath   string    `gorm:"size:255;uniqueIndex;not null" json:"storage_path"`
	ThumbnailPath *string   `gorm:"size:255" json:"thumbnail_path,omitempty"`
	Kind          string    `gorm:"size:10;not null" json:"kind"` // image|video|audio|music
	Caption       *string   `gorm:"size:280" json:"caption,omitempty"`
	CreatedAt     time.Time `gorm:"index:idx_media_group_created" json:"created_at"`
}

func (Media) TableName() string {
	return "media"
}
