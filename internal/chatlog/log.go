package chatlog

import (
	"fmt"
	"sync"
	"time"

	"github.com/carebridge/chat-gateway/internal/model"
)

// EditWindow is the local policy window within which an outgoing text
// message may still be edited. The transport may accept later edits; the
// gateway just stops offering the affordance.
const EditWindow = 10 * time.Minute

// Log is the append-only in-memory session log. The transport delivers the
// same logical message through push events and the history poll, under
// different identifier fields, so every identifier variant ever seen is
// tracked and re-deliveries are dropped on set membership — never on
// content, since sending identical text twice on purpose is allowed.
type Log struct {
	mu      sync.Mutex
	entries []*model.Message
	seen    map[string]int // identifier variant -> entry index
}

func New() *Log {
	return &Log{
		seen: make(map[string]int),
	}
}

// IdentifierVariants lists every key the same logical message may arrive
// under: transport id, poll mid, and the synthesized from-time composite.
func IdentifierVariants(msg *model.Message) []string {
	var variants []string
	if msg.ID != "" {
		variants = append(variants, msg.ID)
	}
	if msg.MID != "" && msg.MID != msg.ID {
		variants = append(variants, msg.MID)
	}
	if msg.From != "" && !msg.SentAt.IsZero() {
		variants = append(variants, fmt.Sprintf("%s-%d", msg.From, msg.SentAt.UnixMilli()))
	}
	return variants
}

// Append adds a message unless any of its identifier variants was already
// seen. It reports whether a new entry was created; on a duplicate, the
// previously unknown variants are still recorded against the existing entry.
func (l *Log) Append(msg *model.Message) bool {
	if msg == nil {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	variants := IdentifierVariants(msg)
	for _, v := range variants {
		if idx, ok := l.seen[v]; ok {
			l.recordVariants(variants, idx)
			return false
		}
	}

	l.entries = append(l.entries, msg)
	l.recordVariants(variants, len(l.entries)-1)
	return true
}

// Seen reports whether any identifier variant of msg is already known. It
// records nothing, so callers can stage work (archive in a transaction) and
// Append only once that work has committed.
func (l *Log) Seen(msg *model.Message) bool {
	if msg == nil {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, v := range IdentifierVariants(msg) {
		if _, ok := l.seen[v]; ok {
			return true
		}
	}
	return false
}

func (l *Log) recordVariants(variants []string, idx int) {
	for _, v := range variants {
		if _, ok := l.seen[v]; !ok {
			l.seen[v] = idx
		}
	}
}

// ApplyEdit replaces the content of the entry matching any known identifier
// and marks it edited in place. No new entry is created; the entry keeps its
// id. It reports whether a matching entry was found.
func (l *Log) ApplyEdit(ref string, content string, at time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx, ok := l.seen[ref]
	if !ok {
		return false
	}

	entry := l.entries[idx]
	entry.Content = content
	entry.IsEdited = true
	edited := at
	entry.EditedAt = &edited
	return true
}

// CanEdit applies the local edit policy: only outgoing text messages within
// EditWindow of the original send time.
func (l *Log) CanEdit(ref string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx, ok := l.seen[ref]
	if !ok {
		return false
	}

	entry := l.entries[idx]
	if entry.IsIncoming || entry.Type != model.TypeText {
		return false
	}
	return now.Sub(entry.SentAt) <= EditWindow
}

// Get returns the entry matching any known identifier variant.
func (l *Log) Get(ref string) (*model.Message, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx, ok := l.seen[ref]
	if !ok {
		return nil, false
	}
	return l.entries[idx], true
}

// Messages returns a snapshot of the log in append order.
func (l *Log) Messages() []model.Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.Message, len(l.entries))
	for i, entry := range l.entries {
		out[i] = *entry
	}
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
