package envelope

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/carebridge/chat-gateway/internal/model"
)

const (
	// Durations below this are assumed to be seconds and get scaled to
	// milliseconds. Legacy senders never agreed on a unit.
	audioSecondsMax = 3600

	// Some historical payloads carry the template placeholder instead of a
	// real URL; it must never be rendered.
	urlPlaceholder = "image_url"

	localIDSource = "chat"
)

// suppressedTypes are legacy event types that must never reach the log.
var suppressedTypes = map[string]struct{}{
	"healthcoachchanged": {},
	"mealplanupdate":     {},
}

// Normalize converts a raw transport delivery into the canonical message
// model. It returns nil for suppressed legacy types and for product
// suggestions whose resolved product list is empty. It never returns an
// error: malformed payloads degrade to text or custom messages.
func Normalize(d model.Delivery, ctx model.Context) *model.Message {
	msg := scaffold(d, ctx)

	payload, ok := decodeExt(d.Ext)
	if !ok {
		// Ext may be a bare JSON string; render it as text.
		var s string
		if len(d.Ext) > 0 && json.Unmarshal(d.Ext, &s) == nil && s != "" {
			msg.Content = s
			return msg
		}
		msg.Content = d.Body
		return msg
	}

	flat := flatten(payload, d.Type)

	typ := strings.ToLower(strings.TrimSpace(getString(flat, "type")))
	if typ == "" {
		msg.Content = d.Body
		return msg
	}

	if _, drop := suppressedTypes[typ]; drop {
		return nil
	}

	return dispatch(typ, flat, msg)
}

// scaffold fills the transport-level fields shared by every message type.
func scaffold(d model.Delivery, ctx model.Context) *model.Message {
	sentAt := time.Now()
	if d.Time > 0 {
		sentAt = time.UnixMilli(d.Time)
	}

	id := d.ID
	if id == "" {
		id = LocalID(sentAt)
	}

	msg := &model.Message{
		ID:      id,
		MID:     d.MID,
		From:    d.From,
		Type:    model.TypeText,
		Content: d.Body,
		SentAt:  sentAt,
	}

	if d.From == ctx.CurrentUserID {
		msg.Sender = model.SenderLabelSelf
		msg.IsIncoming = false
	} else {
		msg.Sender = d.From
		msg.IsIncoming = true
		msg.Avatar = clearPlaceholder(ctx.SelectedContactAvatar)
		if msg.Avatar == "" {
			msg.Avatar = clearPlaceholder(ctx.DefaultAvatar)
		}
	}

	return msg
}

// LocalID generates a fallback identifier when the transport omits one.
// Uniqueness is best-effort within a session, not guaranteed across restarts.
func LocalID(at time.Time) string {
	return fmt.Sprintf("%s-%d-%06x", localIDSource, at.UnixMilli(), rand.Intn(1<<24))
}

// decodeExt parses the extension payload into a generic object.
func decodeExt(raw json.RawMessage) (map[string]interface{}, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return nil, false
	}
	return m, true
}

// flatten unwraps the historical wrapper shapes until a flat object with a
// resolved "type" remains. Later wrapper formats may nest earlier ones, so
// unwrapping repeats innermost-first before type dispatch:
//
//  1. {type, data: "<json>"} — merge the parsed inner object, inner fields
//     (including type) win over outer ones;
//  2. {messageType, payload} — flatten to {...payload, type: messageType};
//  3. {payload} with only an outer type hint — flatten, hint fills type;
//  4. {action_type, ...} without type — action_type becomes type;
//  5. flat object with type — used as-is.
func flatten(m map[string]interface{}, hint string) map[string]interface{} {
	for i := 0; i < 8; i++ {
		if inner, ok := parseObject(m["data"]); ok {
			merged := make(map[string]interface{}, len(m)+len(inner))
			for k, v := range m {
				if k != "data" {
					merged[k] = v
				}
			}
			for k, v := range inner {
				merged[k] = v
			}
			m = merged
			continue
		}

		if mt, hasMT := m["messageType"]; hasMT {
			if inner, ok := parseObject(m["payload"]); ok {
				flat := make(map[string]interface{}, len(inner)+1)
				for k, v := range inner {
					flat[k] = v
				}
				flat["type"] = mt
				m = flat
				continue
			}
		}

		if inner, ok := parseObject(m["payload"]); ok {
			outerType := getString(m, "type")
			flat := make(map[string]interface{}, len(inner)+1)
			for k, v := range inner {
				flat[k] = v
			}
			if _, hasType := flat["type"]; !hasType {
				if outerType != "" {
					flat["type"] = outerType
				} else if hint != "" {
					flat["type"] = hint
				}
			}
			m = flat
			continue
		}

		break
	}

	if _, hasType := m["type"]; !hasType {
		if at := getString(m, "action_type"); at != "" {
			m["type"] = at
		}
	}

	return m
}

// parseObject accepts either a nested object or a stringified one.
func parseObject(v interface{}) (map[string]interface{}, bool) {
	switch t := v.(type) {
	case map[string]interface{}:
		return t, true
	case string:
		trimmed := strings.TrimSpace(t)
		if !strings.HasPrefix(trimmed, "{") {
			return nil, false
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(trimmed), &m); err != nil {
			return nil, false
		}
		return m, true
	default:
		return nil, false
	}
}

func dispatch(typ string, flat map[string]interface{}, msg *model.Message) *model.Message {
	switch typ {
	case "image":
		msg.Type = model.TypeImage
		msg.URL = getString(flat, "url")
		msg.FileName = getString(flat, "fileName", "file_name")

	case "audio":
		msg.Type = model.TypeAudio
		msg.URL = getString(flat, "url")
		msg.Transcription = getString(flat, "transcription")
		msg.DurationMS = normalizeDuration(getNumber(flat, "duration"))

	case "file":
		msg.Type = model.TypeFile
		msg.URL = getString(flat, "url")
		msg.FileName = getString(flat, "fileName", "file_name")
		msg.MimeType = getString(flat, "mimeType", "mime_type")
		msg.Size = int64(getNumber(flat, "size"))

	case "documents":
		msg.Type = model.TypeDocuments
		msg.Title = getString(flat, "title")
		msg.Description = getString(flat, "description")
		msg.Icons = parseIcons(flat["icons_details"])
		msg.Documents = parseDocuments(flat["documents_details"])
		// Mirror the first document into the file fields so document
		// messages can share the file rendering path.
		if len(msg.Documents) > 0 {
			msg.URL = msg.Documents[0].URL
			msg.FileName = msg.Documents[0].Name
			msg.MimeType = msg.Documents[0].Type
			msg.Size = msg.Documents[0].Size
		}

	case "video_call", "voice_call":
		if typ == "video_call" {
			msg.Type = model.TypeVideoCall
		} else {
			msg.Type = model.TypeVoiceCall
		}
		msg.Title = getString(flat, "title")
		msg.Description = getString(flat, "description")
		msg.Icons = parseIcons(flat["icons_details"])
		msg.Redirection = parseRedirection(flat["redirection_details"])
		msg.CallURL = findCallURL(flat)

	case "call_scheduled", "scheduled_call_canceled":
		if typ == "call_scheduled" {
			msg.Type = model.TypeCallScheduled
		} else {
			msg.Type = model.TypeCallCanceled
		}
		msg.Title = getString(flat, "title")
		msg.Description = getString(flat, "description")
		msg.ScheduledAt = parseEpochSeconds(flat["time"])

	case "products", "recommended_products":
		products := parseProducts(flat)
		if len(products) == 0 {
			// Empty suggestion messages are noise.
			return nil
		}
		msg.Type = model.TypeProducts
		msg.Title = getString(flat, "title")
		msg.Products = products

	case "meal_plan_updated", "meal_plan_update":
		msg.Type = model.TypeSystem
		msg.SystemKind = model.SystemKindMealPlanUpdated
		msg.Title = getString(flat, "title")
		msg.Description = getString(flat, "description")
		msg.Icons = parseIcons(flat["icons_details"])
		msg.Redirection = parseRedirection(flat["redirection_details"])

	case "new_nutritionist", "new_nutrionist", "coach_assigned", "coach_details":
		msg.Type = model.TypeSystem
		msg.SystemKind = model.SystemKindNewNutritionist
		msg.CoachID = getString(flat, "id")
		msg.Title = getString(flat, "name", "title")
		msg.Description = getString(flat, "description")
		msg.ActionType = getString(flat, "action_type")
		msg.Icons = parseIcons(flat["icons_details"])
		msg.ProfilePhoto = clearPlaceholder(getString(flat, "profilePhoto", "profile_photo"))
		if msg.ProfilePhoto == "" && msg.Icons != nil {
			msg.ProfilePhoto = msg.Icons.LeftIcon
		}

	case "general_notification", "general-notification":
		msg.Type = model.TypeGeneralNotification
		msg.Title = getString(flat, "title")
		msg.Description = getString(flat, "description")
		msg.Redirection = parseRedirection(flat["redirection_details"])

	case "text":
		msg.Type = model.TypeText
		if content := getString(flat, "content", "message", "body"); content != "" {
			msg.Content = content
		}

	default:
		msg.Type = model.TypeCustom
		if raw, err := json.Marshal(flat); err == nil {
			msg.Raw = string(raw)
		}
	}

	return msg
}

// normalizeDuration maps the legacy mixed-unit duration field to
// milliseconds. Values under audioSecondsMax are taken as seconds.
func normalizeDuration(d float64) int64 {
	if d <= 0 {
		return 0
	}
	if d < audioSecondsMax {
		return int64(d * 1000)
	}
	return int64(d)
}

// findCallURL probes the nesting depths where legacy payloads have been seen
// carrying call_details; the first non-empty url wins.
func findCallURL(flat map[string]interface{}) string {
	probes := []interface{}{flat["call_details"]}
	if p, ok := parseObject(flat["payload"]); ok {
		probes = append(probes, p["call_details"])
	}
	if d, ok := parseObject(flat["data"]); ok {
		probes = append(probes, d["call_details"])
	}
	for _, probe := range probes {
		if details, ok := parseObject(probe); ok {
			if url := getString(details, "call_url", "callUrl", "url"); url != "" {
				return url
			}
		}
	}
	return ""
}

func parseProducts(flat map[string]interface{}) []model.Product {
	raw := flat["products"]
	if raw == nil {
		raw = flat["product_list"]
	}

	items, ok := raw.([]interface{})
	if !ok {
		// Legacy senders stringify the array.
		if s, isStr := raw.(string); isStr {
			if err := json.Unmarshal([]byte(s), &items); err != nil {
				return nil
			}
		} else {
			return nil
		}
	}

	var products []model.Product
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		products = append(products, model.Product{
			ID:          getString(obj, "id"),
			Name:        getString(obj, "name", "title"),
			Description: getString(obj, "description"),
			ImageURL:    clearPlaceholder(getString(obj, "image", "image_url")),
			Price:       getString(obj, "price"),
			URL:         getString(obj, "url", "link"),
		})
	}
	return products
}

func parseDocuments(v interface{}) []model.DocumentDetail {
	items, ok := v.([]interface{})
	if !ok {
		if obj, isObj := parseObject(v); isObj {
			items = []interface{}{obj}
		} else {
			return nil
		}
	}

	var docs []model.DocumentDetail
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		docs = append(docs, model.DocumentDetail{
			URL:  getString(obj, "url"),
			Size: int64(getNumber(obj, "size")),
			Type: getString(obj, "type"),
			Name: getString(obj, "name", "fileName", "file_name"),
		})
	}
	return docs
}

func parseIcons(v interface{}) *model.IconsDetails {
	obj, ok := parseObject(v)
	if !ok {
		return nil
	}
	icons := &model.IconsDetails{
		LeftIcon:  clearPlaceholder(getString(obj, "left_icon", "leftIcon")),
		RightIcon: clearPlaceholder(getString(obj, "right_icon", "rightIcon")),
	}
	if icons.LeftIcon == "" && icons.RightIcon == "" {
		return nil
	}
	return icons
}

func parseRedirection(v interface{}) *model.RedirectionDetails {
	obj, ok := parseObject(v)
	if !ok {
		return nil
	}
	r := &model.RedirectionDetails{
		Type:   getString(obj, "type"),
		Target: getString(obj, "target", "screen"),
		URL:    getString(obj, "url", "link"),
	}
	if r.Type == "" && r.Target == "" && r.URL == "" {
		return nil
	}
	return r
}

// parseEpochSeconds accepts a number or a numeric string of epoch seconds.
// Anything unparseable yields nil; the message is still retained.
func parseEpochSeconds(v interface{}) *time.Time {
	var secs int64
	switch t := v.(type) {
	case float64:
		secs = int64(t)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return nil
		}
		secs = parsed
	default:
		return nil
	}
	if secs <= 0 {
		return nil
	}
	at := time.Unix(secs, 0)
	return &at
}

func clearPlaceholder(s string) string {
	if s == urlPlaceholder {
		return ""
	}
	return s
}

// getString returns the first present key rendered as a string; numbers are
// formatted since legacy payloads are loose about field types.
func getString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			if v == float64(int64(v)) {
				return strconv.FormatInt(int64(v), 10)
			}
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func getNumber(m map[string]interface{}, keys ...string) float64 {
	for _, key := range keys {
		switch v := m[key].(type) {
		case float64:
			return v
		case string:
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return parsed
			}
		}
	}
	return 0
}
