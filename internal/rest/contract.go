//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"time"

	"github.com/carebridge/chat-gateway/internal/api"
	"github.com/carebridge/chat-gateway/internal/client/care"
	"github.com/carebridge/chat-gateway/internal/model"
)

type DBRepo interface {
	SaveMessage(ctx context.Context, peerID string, msg *model.Message) error
	ApplyEdit(ctx context.Context, ref, content string, at time.Time) error
	GetRecentMessages(ctx context.Context, peerID string, offset string, limit int32) (*model.MessageList, error)
	RegisterSeenIDs(ctx context.Context, messageID string, variants []string) error
	IsSeen(ctx context.Context, variants []string) (bool, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type StreamClient interface {
	Send(ctx context.Context, d model.Delivery) error
	History(ctx context.Context, targetID string, limit int, before string) ([]model.Delivery, error)
}

type CareClient interface {
	GetCoach(ctx context.Context, userID string) (*care.Coach, error)
	ScheduleCall(ctx context.Context, userID, coachID string, at int64, kind string) (*care.ScheduledCall, error)
	CancelCall(ctx context.Context, userID, scheduleID string) error
	GetChatSummary(ctx context.Context, userID string) (*care.ChatSummary, error)
}

type PresenceStore interface {
	Set(ctx context.Context, userID, status string) error
	Get(ctx context.Context, userID string) (string, error)
}

type Validator interface {
	ValidateSendMessage(req *api.SendMessageRequest) error
	ValidateSetPresence(req *api.SetPresenceRequest) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateJoinToken(userID, channel string) (string, int64, error)
}
