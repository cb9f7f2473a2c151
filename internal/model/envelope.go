package model

import "encoding/json"

// Delivery is a raw transport event as the chat vendor hands it over, either
// through the push webhook or the history poll. Ext carries the custom
// extension payload whose shape varies by source and era.
type Delivery struct {
	ID   string          `json:"id,omitempty"`
	MID  string          `json:"mid,omitempty"`
	From string          `json:"from"`
	To   string          `json:"to,omitempty"`
	Type string          `json:"type,omitempty"`
	Time int64           `json:"time,omitempty"`
	Body string          `json:"body,omitempty"`
	Ext  json.RawMessage `json:"ext,omitempty"`
}

const (
	EventMessage          = "message"
	EventModified         = "message_modified"
	EventPresence         = "presence"
	EventTokenExpiring    = "token_expiring"
	EventTrackPublished   = "track_published"
	EventTrackUnpublished = "track_unpublished"
)

// TransportEvent is a single frame off the transport websocket or the
// vendor's webhook relay topic. Kind is set on track lifecycle events only.
type TransportEvent struct {
	Event    string   `json:"event"`
	Delivery Delivery `json:"delivery"`
	UserID   string   `json:"user_id,omitempty"`
	Status   string   `json:"status,omitempty"`
	Kind     string   `json:"kind,omitempty"`
}

// Context carries per-conversation facts the normalizer needs but the
// transport does not deliver.
type Context struct {
	CurrentUserID         string
	PeerID                string
	SelectedContactAvatar string
	DefaultAvatar         string
}

// OutboundPayload is the typed input to the outbound envelope builder.
type OutboundPayload struct {
	Type          MessageType
	Content       string
	URL           string
	FileName      string
	MimeType      string
	Size          int64
	Transcription string
	DurationMS    int64
	Title         string
	Description   string
	CallURL       string
	Icons         *IconsDetails
	Redirection   *RedirectionDetails
	ScheduledAt   int64 // epoch seconds
	CoachID       string
	ProfilePhoto  string
	ActionType    string
	Products      []Product
	Documents     []DocumentDetail
}
