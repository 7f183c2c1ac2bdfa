package events

import (
	"context"
	"log"
	"sync"

	"loop/internal/common"
	"loop/internal/config"
)

// Bus fans domain events out to subscribed observers. Publish delivers
// synchronously; PublishAsync queues onto a bounded channel drained by a
// worker pool, dropping events when the channel is full rather than blocking
// a mutating operation.
type Bus struct {
	observers    map[string]common.Observer
	eventChannel chan common.GroupEvent
	workerPool   int
	ctx          context.Context
	cancel       context.CancelFunc
	mu           sync.RWMutex
	wg           sync.WaitGroup
}

func NewBus(cfg *config.Config) *Bus {
	ctx, cancel := context.WithCancel(context.Background())

	b := &Bus{
		observers:    make(map[string]common.Observer),
		eventChannel: make(chan common.GroupEvent, cfg.Events.ChannelBufferSize),
		workerPool:   cfg.Events.Workers,
		ctx:          ctx,
		cancel:       cancel,
	}

	for i := 0; i < b.workerPool; i++ {
		b.wg.Add(1)
		go b.processEvents()
	}

	return b
}

func (b *Bus) Subscribe(observer common.Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.observers[observer.Name()] = observer
	log.Printf("Observer %s subscribed", observer.Name())
}

func (b *Bus) Unsubscribe(observer common.Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.observers, observer.Name())
	log.Printf("Observer %s unsubscribed", observer.Name())
}

func (b *Bus) Publish(event common.GroupEvent) {
	b.mu.RLock()
	observers := make([]common.Observer, 0, len(b.observers))
	for _, obs := range b.observers {
		observers = append(observers, obs)
	}
	b.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(event); err != nil {
			log.Printf("Observer %s update failed: %v", observer.Name(), err)
		}
	}
}

func (b *Bus) PublishAsync(event common.GroupEvent) {
	select {
	case b.eventChannel <- event:

	case <-b.ctx.Done():
		return
	default:
		log.Printf("Event channel full, dropping event: %s", event.Type)
	}
}

func (b *Bus) processEvents() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChannel:
			b.Publish(event)
		case <-b.ctx.Done():
			return
		}
	}
}

func (b *Bus) Shutdown() {
	b.cancel()
	b.wg.Wait()
	log.Println("Event bus shutdown complete")
}
