package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/carebridge/chat-gateway/internal/api"
	"github.com/carebridge/chat-gateway/internal/chatlog"
	"github.com/carebridge/chat-gateway/internal/config"
	"github.com/carebridge/chat-gateway/internal/envelope"
	"github.com/carebridge/chat-gateway/internal/model"
	"github.com/carebridge/chat-gateway/internal/pkg/tx"
)

type Handler struct {
	repository    DBRepo
	streamClient  StreamClient
	careClient    CareClient
	presenceStore PresenceStore
	validator     Validator
	jwtGenerator  JWTGenerator
	sessions      *chatlog.Registry
	rtcAppID      string
	defaultAvatar string
}

func New(
	repo DBRepo,
	streamClient StreamClient,
	careClient CareClient,
	presenceStore PresenceStore,
	validator Validator,
	jwtGenerator JWTGenerator,
	sessions *chatlog.Registry,
	rtcAppID string,
	defaultAvatar string,
) *Handler {
	return &Handler{
		repository:    repo,
		streamClient:  streamClient,
		careClient:    careClient,
		presenceStore: presenceStore,
		validator:     validator,
		jwtGenerator:  jwtGenerator,
		sessions:      sessions,
		rtcAppID:      rtcAppID,
		defaultAvatar: defaultAvatar,
	}
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request, peerID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	now := time.Now()
	delivery := model.Delivery{
		ID:   envelope.LocalID(now),
		From: senderID,
		To:   peerID,
		Time: now.UnixMilli(),
	}

	messageType := model.MessageType(req.MessageType)
	if messageType == model.TypeText {
		delivery.Body = req.Content
	} else {
		ext, err := envelope.BuildCustomExts(outboundPayload(&req))
		if err != nil {
			logger.Error(fmt.Sprintf("failed to build message envelope: %v", err))
			h.writeError(w, fmt.Sprintf("failed to build message envelope: %v", err), http.StatusBadRequest)
			return
		}
		raw, err := json.Marshal(ext)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to marshal message envelope: %v", err))
			h.writeError(w, "failed to build message envelope", http.StatusInternalServerError)
			return
		}
		delivery.Ext = raw
	}

	msg := envelope.Normalize(delivery, model.Context{
		CurrentUserID: senderID,
		PeerID:        peerID,
		DefaultAvatar: h.defaultAvatar,
	})
	if msg == nil {
		logger.Error("outbound message resolved to nothing")
		h.writeError(w, "message resolved to nothing", http.StatusBadRequest)
		return
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		if err := h.repository.SaveMessage(ctx, peerID, msg); err != nil {
			logger.Error(fmt.Sprintf("failed to save message: %v", err))
			return fmt.Errorf("failed to save message: %v", err)
		}
		if err := h.repository.RegisterSeenIDs(ctx, msg.ID, chatlog.IdentifierVariants(msg)); err != nil {
			logger.Error(fmt.Sprintf("failed to register message ids: %v", err))
			return fmt.Errorf("failed to register message ids: %v", err)
		}
		return nil
	})
	if err != nil {
		h.writeError(w, fmt.Sprintf("failed to send message: %v", err), http.StatusInternalServerError)
		return
	}

	h.sessions.Get(peerID).Append(msg)

	if err := h.streamClient.Send(r.Context(), delivery); err != nil {
		logger.Error(fmt.Sprintf("failed to publish message to transport: %v", err))
	}

	response := api.SendMessageResponse{
		MessageID: msg.ID,
		SentAt:    msg.SentAt.Format(time.RFC3339),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request, peerID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessages")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.writeError(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	before := r.URL.Query().Get("before")

	log := h.sessions.Get(peerID)

	deliveries, err := h.streamClient.History(r.Context(), peerID, limit, before)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch history, serving archive: %v", err))

		archived, archiveErr := h.repository.GetRecentMessages(r.Context(), peerID, before, int32(limit))
		if archiveErr != nil {
			logger.Error(fmt.Sprintf("failed to fetch archived messages: %v", archiveErr))
			h.writeError(w, "failed to fetch history", http.StatusInternalServerError)
			return
		}

		// Archive pages are newest-first too; already normalized.
		for i := len(*archived) - 1; i >= 0; i-- {
			msg := (*archived)[i]
			log.Append(&msg)
		}

		h.writeJSON(w, api.GetMessagesResponse{Messages: log.Messages()}, http.StatusOK)
		return
	}

	normCtx := model.Context{
		CurrentUserID: userUUID,
		PeerID:        peerID,
		DefaultAvatar: h.defaultAvatar,
	}

	// History pages arrive newest-first; walk backwards so the log stays in
	// send order. Fresh messages are staged first and only appended to the
	// log after the archive transaction commits, so a rollback leaves them
	// unknown and the next poll archives them again.
	var fresh []*model.Message
	staged := make(map[string]struct{})
	for i := len(deliveries) - 1; i >= 0; i-- {
		msg := envelope.Normalize(deliveries[i], normCtx)
		if msg == nil || log.Seen(msg) {
			continue
		}

		variants := chatlog.IdentifierVariants(msg)
		duplicate := false
		for _, v := range variants {
			if _, ok := staged[v]; ok {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		for _, v := range variants {
			staged[v] = struct{}{}
		}
		fresh = append(fresh, msg)
	}

	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		for _, msg := range fresh {
			if err := h.repository.SaveMessage(ctx, peerID, msg); err != nil {
				logger.Error(fmt.Sprintf("failed to archive message: %v", err))
				return fmt.Errorf("failed to archive message: %v", err)
			}
			if err := h.repository.RegisterSeenIDs(ctx, msg.ID, chatlog.IdentifierVariants(msg)); err != nil {
				logger.Error(fmt.Sprintf("failed to register message ids: %v", err))
				return fmt.Errorf("failed to register message ids: %v", err)
			}
		}
		return nil
	})
	if err != nil {
		h.writeError(w, fmt.Sprintf("failed to merge history: %v", err), http.StatusInternalServerError)
		return
	}

	for _, msg := range fresh {
		log.Append(msg)
	}

	response := api.GetMessagesResponse{
		Messages: log.Messages(),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) EditMessage(w http.ResponseWriter, r *http.Request, peerID, messageID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EditMessage")

	var req api.EditMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	log := h.sessions.Get(peerID)

	if !log.CanEdit(messageID, now) {
		logger.Error(fmt.Sprintf("message %s can no longer be edited", messageID))
		h.writeError(w, "message can no longer be edited", http.StatusForbidden)
		return
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		if err := h.repository.ApplyEdit(ctx, messageID, req.Content, now); err != nil {
			logger.Error(fmt.Sprintf("failed to apply edit: %v", err))
			return fmt.Errorf("failed to apply edit: %v", err)
		}
		return nil
	})
	if err != nil {
		h.writeError(w, fmt.Sprintf("failed to edit message: %v", err), http.StatusInternalServerError)
		return
	}

	log.ApplyEdit(messageID, req.Content, now)

	modified := model.Delivery{
		ID:   messageID,
		From: senderID,
		To:   peerID,
		Type: model.EventModified,
		Body: req.Content,
		Time: now.UnixMilli(),
	}
	if err := h.streamClient.Send(r.Context(), modified); err != nil {
		logger.Error(fmt.Sprintf("failed to publish edit to transport: %v", err))
	}

	response := api.EditMessageResponse{
		MessageID: messageID,
		IsEdited:  true,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetConnectToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate connect token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate connect token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated connect token for user %s", userUUID))

	response := api.GetConnectTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetJoinToken(w http.ResponseWriter, r *http.Request, channelID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetJoinToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateJoinToken(userUUID, channelID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate join token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate join token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated join token for user %s, channel %s", userUUID, channelID))

	response := api.GetJoinTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   channelID,
		AppID:     h.rtcAppID,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetCoach(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetCoach")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	coach, err := h.careClient.GetCoach(r.Context(), userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get coach details: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get coach details: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.CoachResponse{
		ID:           coach.ID,
		Name:         coach.Name,
		Description:  coach.Description,
		ProfilePhoto: coach.ProfilePhoto,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) ScheduleCall(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ScheduleCall")

	var req api.ScheduleCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if req.CoachID == "" || req.Time <= 0 {
		logger.Error("schedule request missing coach_id or time")
		h.writeError(w, "coach_id and time are required", http.StatusBadRequest)
		return
	}

	scheduled, err := h.careClient.ScheduleCall(r.Context(), userUUID, req.CoachID, req.Time, req.Kind)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to schedule call: %v", err))
		h.writeError(w, fmt.Sprintf("failed to schedule call: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.ScheduleCallResponse{
		ScheduleID: scheduled.ScheduleID,
		Time:       scheduled.Time,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) CancelCall(w http.ResponseWriter, r *http.Request, scheduleID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CancelCall")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.careClient.CancelCall(r.Context(), userUUID, scheduleID); err != nil {
		logger.Error(fmt.Sprintf("failed to cancel call: %v", err))
		h.writeError(w, fmt.Sprintf("failed to cancel call: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetChatSummary(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetChatSummary")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	summary, err := h.careClient.GetChatSummary(r.Context(), userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get chat summary: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get chat summary: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.ChatSummaryResponse{
		PeerID:               summary.PeerID,
		LastMessageContent:   summary.LastMessageContent,
		LastMessageTimestamp: summary.LastMessageTimestamp,
		UnreadCount:          summary.UnreadCount,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetPresence(w http.ResponseWriter, r *http.Request, peerID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetPresence")

	status, err := h.presenceStore.Get(r.Context(), peerID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get presence: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get presence: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.PresenceResponse{
		UserID: peerID,
		Status: status,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) SetPresence(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SetPresence")

	var req api.SetPresenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSetPresence(&req); err != nil {
		logger.Error(fmt.Sprintf("presence validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("presence validation failed: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.presenceStore.Set(r.Context(), userUUID, req.Status); err != nil {
		logger.Error(fmt.Sprintf("failed to set presence: %v", err))
		h.writeError(w, fmt.Sprintf("failed to set presence: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.PresenceResponse{
		UserID: userUUID,
		Status: req.Status,
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func outboundPayload(req *api.SendMessageRequest) model.OutboundPayload {
	return model.OutboundPayload{
		Type:          model.MessageType(req.MessageType),
		Content:       req.Content,
		URL:           req.URL,
		FileName:      req.FileName,
		MimeType:      req.MimeType,
		Size:          req.Size,
		Transcription: req.Transcription,
		DurationMS:    req.DurationMS,
		Title:         req.Title,
		Description:   req.Description,
		CallURL:       req.CallURL,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
