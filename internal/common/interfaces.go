package common

// Observer receives domain events published by the core services.
type Observer interface {
	Update(event GroupEvent) error
	Name() string
}

// Subject is the publishing side of the domain event bus.
type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	Publish(event GroupEvent)
	PublishAsync(event GroupEvent)
}
