package model

import (
	"time"
)

type MessageType string

const (
	TypeText                MessageType = "text"
	TypeImage               MessageType = "image"
	TypeAudio               MessageType = "audio"
	TypeFile                MessageType = "file"
	TypeDocuments           MessageType = "documents"
	TypeProducts            MessageType = "products"
	TypeVideoCall           MessageType = "video_call"
	TypeVoiceCall           MessageType = "voice_call"
	TypeCallScheduled       MessageType = "call_scheduled"
	TypeCallCanceled        MessageType = "scheduled_call_canceled"
	TypeGeneralNotification MessageType = "general_notification"
	TypeSystem              MessageType = "system"
	TypeCustom              MessageType = "custom"
)

const (
	SystemKindMealPlanUpdated = "meal_plan_updated"
	SystemKindNewNutritionist = "new_nutritionist"
)

// SenderLabelSelf marks messages authored by the current user, including
// transport echoes of our own sends.
const SenderLabelSelf = "You"

type MessageList []Message

// Message is the canonical view model every envelope shape normalizes into.
// Exactly one Type is set; type-specific fields are zero for other types.
type Message struct {
	ID         string      `json:"id"`
	MID        string      `json:"mid,omitempty"`
	From       string      `json:"from"`
	Sender     string      `json:"sender"`
	IsIncoming bool        `json:"is_incoming"`
	IsEdited   bool        `json:"is_edited"`
	Type       MessageType `json:"message_type"`
	SystemKind string      `json:"system_kind,omitempty"`
	Content    string      `json:"content,omitempty"`
	SentAt     time.Time   `json:"sent_at"`
	EditedAt   *time.Time  `json:"edited_at,omitempty"`
	Avatar     string      `json:"avatar,omitempty"`

	URL           string `json:"url,omitempty"`
	FileName      string `json:"file_name,omitempty"`
	MimeType      string `json:"mime_type,omitempty"`
	Size          int64  `json:"size,omitempty"`
	Transcription string `json:"transcription,omitempty"`
	DurationMS    int64  `json:"duration_ms,omitempty"`

	Title        string              `json:"title,omitempty"`
	Description  string              `json:"description,omitempty"`
	Icons        *IconsDetails       `json:"icons_details,omitempty"`
	Redirection  *RedirectionDetails `json:"redirection_details,omitempty"`
	CallURL      string              `json:"call_url,omitempty"`
	ScheduledAt  *time.Time          `json:"scheduled_at,omitempty"`
	ActionType   string              `json:"action_type,omitempty"`
	ProfilePhoto string              `json:"profile_photo,omitempty"`
	CoachID      string              `json:"coach_id,omitempty"`

	Products  []Product        `json:"products,omitempty"`
	Documents []DocumentDetail `json:"documents,omitempty"`

	// Raw keeps the flattened payload for unrecognized custom types.
	Raw string `json:"raw,omitempty"`
}

type IconsDetails struct {
	LeftIcon  string `json:"left_icon,omitempty"`
	RightIcon string `json:"right_icon,omitempty"`
}

type RedirectionDetails struct {
	Type   string `json:"type,omitempty"`
	Target string `json:"target,omitempty"`
	URL    string `json:"url,omitempty"`
}

type Product struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Price       string `json:"price,omitempty"`
	URL         string `json:"url,omitempty"`
}

type DocumentDetail struct {
	URL  string `json:"url,omitempty"`
	Size int64  `json:"size,omitempty"`
	Type string `json:"type,omitempty"`
	Name string `json:"name,omitempty"`
}

// MessageRow is the archive representation; the full canonical message is
// kept as JSON alongside the queryable columns.
type MessageRow struct {
	ID       string     `db:"id"`
	MID      *string    `db:"mid"`
	PeerID   string     `db:"peer_id"`
	SenderID string     `db:"sender_id"`
	Type     string     `db:"type"`
	Content  string     `db:"content"`
	Payload  []byte     `db:"payload"`
	SentAt   time.Time  `db:"sent_at"`
	IsEdited bool       `db:"is_edited"`
	EditedAt *time.Time `db:"edited_at"`
}
