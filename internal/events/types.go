package events

// EventType represents the type of forge event
type EventType string

const (
	// EventTypeItemModified fires after a currency operation stored a changed instance
	EventTypeItemModified EventType = "item.modified"
)

// Event describes a change to a player's sources
type Event struct {
	Type       EventType
	PlayerID   string
	InstanceID string
	Operation  string
	Cancelled  bool
}

// Cancel stops propagation to lower priority listeners
func (e *Event) Cancel() { e.Cancelled = true }
