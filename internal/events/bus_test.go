package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loop/internal/common"
	"loop/internal/config"
)

type recordingObserver struct {
	mu     sync.Mutex
	name   string
	events []common.GroupEvent
}

func (r *recordingObserver) Name() string { return r.name }

func (r *recordingObserver) Update(event common.GroupEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingObserver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func testBus(workers, buffer int) *Bus {
	return NewBus(&config.Config{
		Events: config.EventsConfig{Workers: workers, ChannelBufferSize: buffer},
	})
}

func TestBus_PublishDeliversToAllObservers(t *testing.T) {
	bus := testBus(2, 16)
	defer bus.Shutdown()

	first := &recordingObserver{name: "first"}
	second := &recordingObserver{name: "second"}
	bus.Subscribe(first)
	bus.Subscribe(second)

	bus.Publish(common.GroupEvent{
		Type:       common.RosterChangedType,
		GroupID:    1,
		ActorID:    42,
		OccurredAt: time.Now(),
	})

	require.Equal(t, 1, first.count())
	require.Equal(t, 1, second.count())
	assert.Equal(t, common.RosterChangedType, first.events[0].Type)
	assert.Equal(t, int64(42), first.events[0].ActorID)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := testBus(1, 16)
	defer bus.Shutdown()

	obs := &recordingObserver{name: "gone"}
	bus.Subscribe(obs)
	bus.Unsubscribe(obs)

	bus.Publish(common.GroupEvent{Type: common.MediaAddedType, GroupID: 1})

	assert.Equal(t, 0, obs.count())
}

func TestBus_PublishAsync(t *testing.T) {
	bus := testBus(2, 64)
	defer bus.Shutdown()

	obs := &recordingObserver{name: "async"}
	bus.Subscribe(obs)

	for i := 0; i < 10; i++ {
		bus.PublishAsync(common.GroupEvent{Type: common.GroupProfileChangedType, GroupID: int64(i)})
	}

	assert.Eventually(t, func() bool {
		return obs.count() == 10
	}, time.Second, 10*time.Millisecond)
}

func TestBus_PublishAsyncAfterShutdownDoesNotBlock(t *testing.T) {
	bus := testBus(1, 1)
	bus.Shutdown()

	done := make(chan struct{})
	go func() {
		bus.PublishAsync(common.GroupEvent{Type: common.RosterChangedType})
		bus.PublishAsync(common.GroupEvent{Type: common.RosterChangedType})
		bus.PublishAsync(common.GroupEvent{Type: common.RosterChangedType})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("PublishAsync blocked after shutdown")
	}
}
