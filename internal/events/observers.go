package events

import (
	"log"

	"loop/internal/common"
)

// LogObserver writes every event to the process log. It is subscribed by
// default so mutations are traceable even with no external subscribers.
type LogObserver struct{}

func NewLogObserver() *LogObserver {
	return &LogObserver{}
}

func (l *LogObserver) Name() string {
	return "log_observer"
}

func (l *LogObserver) Update(event common.GroupEvent) error {
	if event.MediaID != nil {
		log.Printf("event %s group=%d actor=%d media=%d", event.Type, event.GroupID, event.ActorID, *event.MediaID)
		return nil
	}
	log.Printf("event %s group=%d actor=%d", event.Type, event.GroupID, event.ActorID)
	return nil
}
