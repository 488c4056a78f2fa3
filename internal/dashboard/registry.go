package dashboard

import (
	"sync"

	"hrboard/internal/employee"
	"hrboard/internal/feed"
)

// Registry keys live views by session ID. Views are created lazily on
// first touch and dropped when the session ends.
type Registry struct {
	mu    sync.RWMutex
	views map[string]*View
	opts  []feed.Option
}

func NewRegistry(opts ...feed.Option) *Registry {
	return &Registry{
		views: make(map[string]*View),
		opts:  opts,
	}
}

// GetOrCreate returns the session's view, building one over the given
// snapshot when the session has none yet.
func (r *Registry) GetOrCreate(sessionID string, snapshot []employee.Employee) *View {
	r.mu.RLock()
	if v, ok := r.views[sessionID]; ok {
		r.mu.RUnlock()
		return v
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.views[sessionID]; ok {
		return v
	}
	v := NewView(snapshot, r.opts...)
	r.views[sessionID] = v
	return v
}

// Drop discards the session's view.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.views, sessionID)
}
