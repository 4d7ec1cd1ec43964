package event_bus

import "time"

const (
	EntryCreated    EventType = "entry.created"
	EntryUpdated    EventType = "entry.updated"
	EntryDeleted    EventType = "entry.deleted"
	SettingsChanged EventType = "settings.changed"
)

// EntryEventTypes are all the event types describing a change of a single entry.
var EntryEventTypes = []EventType{EntryCreated, EntryUpdated, EntryDeleted}

// EntryChanged is the delta published whenever an entry is added, modified or removed.
type EntryChanged struct {
	Id   string
	Date time.Time
	// Remote is set when the change was pushed by the store rather than made by this process.
	Remote bool
}

type SettingsUpdated struct {
	Rank        string
	ServiceBand string
	TaxRate     int
	Remote      bool
}
