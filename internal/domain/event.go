package domain

// EventKind is the type of an inbound transport event
type EventKind string

const (
	EventText     EventKind = "text"
	EventPhoto    EventKind = "photo"
	EventVoice    EventKind = "voice"
	EventLocation EventKind = "location"
	EventDocument EventKind = "document"
	EventCallback EventKind = "callback"
)

// FileRef is an opaque transport file handle, resolvable via
// Transport.DownloadFile.
type FileRef string

// Event is the inbound envelope handed to the dispatcher. GroupID is set
// when the transport delivered the photo as part of an explicit media group.
type Event struct {
	Callback  string
	File      FileRef
	GroupID   string
	Kind      EventKind
	Latitude  float64
	Longitude float64
	Text      string
	UserID    int64
}
