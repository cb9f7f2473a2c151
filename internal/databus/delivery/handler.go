//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=handler.go
package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/carebridge/chat-gateway/internal/chatlog"
	"github.com/carebridge/chat-gateway/internal/config"
	"github.com/carebridge/chat-gateway/internal/envelope"
	"github.com/carebridge/chat-gateway/internal/model"
)

type DBRepo interface {
	SaveMessage(ctx context.Context, peerID string, msg *model.Message) error
	ApplyEdit(ctx context.Context, ref, content string, at time.Time) error
	RegisterSeenIDs(ctx context.Context, messageID string, variants []string) error
	IsSeen(ctx context.Context, variants []string) (bool, error)
}

// Handler consumes the vendor's webhook relay topic: the push path. The poll
// path (history merge in the REST layer) may observe the same message under
// a different identifier, so both paths check the shared seen-id set before
// archiving.
type Handler struct {
	repo          DBRepo
	defaultAvatar string
}

func New(repo DBRepo, defaultAvatar string) *Handler {
	return &Handler{
		repo:          repo,
		defaultAvatar: defaultAvatar,
	}
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("HandleDelivery")

	var event model.TransportEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to decode transport event: %v", err))
		return
	}

	h.HandleEvent(ctx, event)
}

// HandleEvent applies a transport event; the websocket subscription in the
// service main uses it directly, the kafka consumer through Handler.
func (h *Handler) HandleEvent(ctx context.Context, event model.TransportEvent) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	switch event.Event {
	case model.EventModified:
		h.handleModified(ctx, logger, event.Delivery)
	case model.EventMessage, "":
		h.handleMessage(ctx, logger, event.Delivery)
	default:
		// Presence and token events carry no message payload.
	}
}

func (h *Handler) handleMessage(ctx context.Context, logger logger_lib.LoggerInterface, d model.Delivery) {
	msg := envelope.Normalize(d, model.Context{
		CurrentUserID: d.To,
		PeerID:        d.From,
		DefaultAvatar: h.defaultAvatar,
	})
	if msg == nil {
		return
	}

	variants := chatlog.IdentifierVariants(msg)

	seen, err := h.repo.IsSeen(ctx, variants)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check seen ids: %v", err))
		return
	}
	if seen {
		return
	}

	if err := h.repo.SaveMessage(ctx, d.From, msg); err != nil {
		logger.Error(fmt.Sprintf("failed to archive message: %v", err))
		return
	}

	if err := h.repo.RegisterSeenIDs(ctx, msg.ID, variants); err != nil {
		logger.Error(fmt.Sprintf("failed to register message ids: %v", err))
	}
}

func (h *Handler) handleModified(ctx context.Context, logger logger_lib.LoggerInterface, d model.Delivery) {
	ref := d.ID
	if ref == "" {
		ref = d.MID
	}
	if ref == "" {
		logger.Error("modification event without message reference")
		return
	}

	at := time.Now()
	if d.Time > 0 {
		at = time.UnixMilli(d.Time)
	}

	if err := h.repo.ApplyEdit(ctx, ref, d.Body, at); err != nil {
		logger.Error(fmt.Sprintf("failed to apply edit: %v", err))
	}
}
