// Package api holds the REST contract types for the chat gateway.
package api

import "github.com/carebridge/chat-gateway/internal/model"

type Error struct {
	Error string `json:"error"`
}

type SendMessageRequest struct {
	MessageType string `json:"message_type"`
	Content     string `json:"content,omitempty"`

	// Custom-message fields; which ones apply depends on message_type.
	URL           string `json:"url,omitempty"`
	FileName      string `json:"file_name,omitempty"`
	MimeType      string `json:"mime_type,omitempty"`
	Size          int64  `json:"size,omitempty"`
	Transcription string `json:"transcription,omitempty"`
	DurationMS    int64  `json:"duration_ms,omitempty"`
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	CallURL       string `json:"call_url,omitempty"`
}

type SendMessageResponse struct {
	MessageID string `json:"message_id"`
	SentAt    string `json:"sent_at"`
}

type EditMessageRequest struct {
	Content string `json:"content"`
}

type EditMessageResponse struct {
	MessageID string `json:"message_id"`
	IsEdited  bool   `json:"is_edited"`
}

type GetMessagesResponse struct {
	Messages []model.Message `json:"messages"`
}

type GetConnectTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type GetJoinTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Channel   string `json:"channel"`
	AppID     string `json:"app_id"`
}

type ScheduleCallRequest struct {
	CoachID string `json:"coach_id"`
	Time    int64  `json:"time"`
	Kind    string `json:"kind,omitempty"`
}

type ScheduleCallResponse struct {
	ScheduleID string `json:"schedule_id"`
	Time       int64  `json:"time"`
}

type CoachResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
}

type ChatSummaryResponse struct {
	PeerID               string `json:"peer_id"`
	LastMessageContent   string `json:"last_message_content,omitempty"`
	LastMessageTimestamp string `json:"last_message_timestamp,omitempty"`
	UnreadCount          int    `json:"unread_count"`
}

type PresenceResponse struct {
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

type SetPresenceRequest struct {
	Status string `json:"status"`
}
