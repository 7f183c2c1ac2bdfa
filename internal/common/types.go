package common

import (
	"time"
)

type EventType string

const (
	RosterChangedType       EventType = "group_roster_changed"
	GroupProfileChangedType EventType = "group_profile_changed"
	MediaAddedType          EventType = "media_added"
	MediaLikeChangedType    EventType = "media_like_changed"
)

type EventMetadata map[string]interface{}

// GroupEvent is published after every mutating operation so external
// subscribers (list refreshers, push senders) can react.
type GroupEvent struct {
	Type       EventType
	GroupID    int64
	ActorID    int64
	MediaID    *int64
	OccurredAt time.Time
	Metadata   EventMetadata
}
