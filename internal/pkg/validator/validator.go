package validator

import (
	"fmt"
	"strings"

	"github.com/carebridge/chat-gateway/internal/api"
	"github.com/carebridge/chat-gateway/internal/envelope"
	"github.com/carebridge/chat-gateway/internal/model"
)

const maxContentLength = 500

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	if strings.TrimSpace(req.MessageType) == "" {
		return fmt.Errorf("message_type is required")
	}

	messageType := model.MessageType(req.MessageType)

	if messageType == model.TypeText {
		if strings.TrimSpace(req.Content) == "" {
			return fmt.Errorf("content cannot be empty")
		}
		if len([]rune(req.Content)) > maxContentLength {
			return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
		}
		return nil
	}

	if !envelope.ComposeSendable(messageType) {
		return fmt.Errorf("message type '%s' cannot be sent from this client", req.MessageType)
	}

	switch messageType {
	case model.TypeImage, model.TypeFile, model.TypeAudio:
		if strings.TrimSpace(req.URL) == "" {
			return fmt.Errorf("url is required for %s messages", req.MessageType)
		}
	case model.TypeVideoCall, model.TypeVoiceCall:
		if strings.TrimSpace(req.CallURL) == "" {
			return fmt.Errorf("call_url is required for %s messages", req.MessageType)
		}
	}

	return nil
}

func (v *Validator) ValidateSetPresence(req *api.SetPresenceRequest) error {
	switch req.Status {
	case model.StatusWaiting, model.StatusInCall, model.StatusOffline:
		return nil
	default:
		return fmt.Errorf("status '%s' is not supported", req.Status)
	}
}
