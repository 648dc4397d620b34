package events

import "slices"

// EventCollector is embedded in aggregates to buffer the domain events raised
// by state transitions until the application layer publishes them.
type EventCollector struct {
	pending []DomainEvent
}

// Record buffers one or more domain events.
func (c *EventCollector) Record(evts ...DomainEvent) {
	c.pending = append(c.pending, evts...)
}

// Events returns a copy of the buffered events.
func (c *EventCollector) Events() []DomainEvent {
	return slices.Clone(c.pending)
}

// ClearEvents drains the buffer, returning what it held.
func (c *EventCollector) ClearEvents() []DomainEvent {
	drained := c.pending
	c.pending = nil
	return drained
}
