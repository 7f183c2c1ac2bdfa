package common

import "strings"

// MediaKind represents the kind column of the media catalog
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
	MediaKindAudio MediaKind = "audio"
	MediaKindMusic MediaKind = "music"
)

// String returns the string representation
func (mk MediaKind) String() string {
	return string(mk)
}

// IsValid checks if the media kind is valid
func (mk MediaKind) IsValid() bool {
	switch mk {
	case MediaKindImage, MediaKindVideo, MediaKindAudio, MediaKindMusic:
		return true
	}
	return false
}

// ContentTypeForExtension maps a file extension to the MIME type sent to the
// blob store. Unknown extensions fall back to application/octet-stream.
func ContentTypeForExtension(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "mp4":
		return "video/mp4"
	case "mov":
		return "video/quicktime"
	default:
		return "application/octet-stream"
	}
}
