package chatlog

import "sync"

// Registry hands out one session log per conversation peer.
type Registry struct {
	mu   sync.Mutex
	logs map[string]*Log
}

func NewRegistry() *Registry {
	return &Registry{
		logs: make(map[string]*Log),
	}
}

func (r *Registry) Get(peerID string) *Log {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.logs[peerID]
	if !ok {
		l = New()
		r.logs[peerID] = l
	}
	return l
}
