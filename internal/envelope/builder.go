package envelope

import (
	"fmt"

	"github.com/carebridge/chat-gateway/internal/model"
)

// composeAllowList gates what the normal compose path may send. Receivable
// types outside this list are built only through dedicated admin actions.
var composeAllowList = map[model.MessageType]struct{}{
	model.TypeImage:     {},
	model.TypeFile:      {},
	model.TypeAudio:     {},
	model.TypeVideoCall: {},
	model.TypeVoiceCall: {},
}

// ComposeSendable reports whether the type may be sent from the normal
// compose path.
func ComposeSendable(t model.MessageType) bool {
	_, ok := composeAllowList[t]
	return ok
}

// BuildCustomExts produces the wire extension fields for an outbound typed
// payload. It is the inverse of Normalize for every buildable type.
func BuildCustomExts(p model.OutboundPayload) (map[string]interface{}, error) {
	ext := map[string]interface{}{
		"type": string(p.Type),
	}

	switch p.Type {
	case model.TypeImage:
		ext["url"] = p.URL
		ext["fileName"] = p.FileName

	case model.TypeAudio:
		ext["url"] = p.URL
		if p.Transcription != "" {
			ext["transcription"] = p.Transcription
		}
		if p.DurationMS > 0 {
			ext["duration"] = p.DurationMS
		}

	case model.TypeFile:
		ext["url"] = p.URL
		ext["fileName"] = p.FileName
		ext["mimeType"] = p.MimeType
		if p.Size > 0 {
			ext["size"] = p.Size
		}

	case model.TypeVideoCall, model.TypeVoiceCall:
		ext["title"] = p.Title
		ext["description"] = p.Description
		ext["call_details"] = map[string]interface{}{
			"call_url": p.CallURL,
		}
		putIcons(ext, p.Icons)
		putRedirection(ext, p.Redirection)

	case model.TypeDocuments:
		ext["title"] = p.Title
		ext["description"] = p.Description
		putIcons(ext, p.Icons)
		docs := make([]interface{}, 0, len(p.Documents))
		for _, d := range p.Documents {
			docs = append(docs, map[string]interface{}{
				"url":  d.URL,
				"size": d.Size,
				"type": d.Type,
				"name": d.Name,
			})
		}
		ext["documents_details"] = docs

	case model.TypeProducts:
		if len(p.Products) == 0 {
			return nil, fmt.Errorf("product suggestion requires at least one product")
		}
		ext["title"] = p.Title
		items := make([]interface{}, 0, len(p.Products))
		for _, prod := range p.Products {
			items = append(items, map[string]interface{}{
				"id":          prod.ID,
				"name":        prod.Name,
				"description": prod.Description,
				"image":       prod.ImageURL,
				"price":       prod.Price,
				"url":         prod.URL,
			})
		}
		ext["products"] = items

	case model.TypeCallScheduled, model.TypeCallCanceled:
		ext["title"] = p.Title
		ext["description"] = p.Description
		if p.ScheduledAt > 0 {
			ext["time"] = p.ScheduledAt
		}

	case model.TypeGeneralNotification:
		ext["type"] = "general_notification"
		ext["title"] = p.Title
		ext["description"] = p.Description
		putRedirection(ext, p.Redirection)

	case model.TypeSystem:
		switch {
		case p.CoachID != "" || p.ProfilePhoto != "":
			ext["type"] = "new_nutritionist"
			ext["id"] = p.CoachID
			ext["name"] = p.Title
			ext["description"] = p.Description
			ext["profilePhoto"] = p.ProfilePhoto
			if p.ActionType != "" {
				ext["action_type"] = p.ActionType
			}
			putIcons(ext, p.Icons)
		default:
			ext["type"] = "meal_plan_updated"
			ext["title"] = p.Title
			ext["description"] = p.Description
			putIcons(ext, p.Icons)
			putRedirection(ext, p.Redirection)
		}

	default:
		return nil, fmt.Errorf("message type %q is not buildable", p.Type)
	}

	return ext, nil
}

func putIcons(ext map[string]interface{}, icons *model.IconsDetails) {
	if icons == nil {
		return
	}
	ext["icons_details"] = map[string]interface{}{
		"left_icon":  icons.LeftIcon,
		"right_icon": icons.RightIcon,
	}
}

func putRedirection(ext map[string]interface{}, r *model.RedirectionDetails) {
	if r == nil {
		return
	}
	ext["redirection_details"] = map[string]interface{}{
		"type":   r.Type,
		"target": r.Target,
		"url":    r.URL,
	}
}
