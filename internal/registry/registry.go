package registry

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ashwinkumar/biotutor/internal/store"
)

// Registry owns every study session and tracks which one is current.
//
// Invariants, maintained by every operation:
//   - the registry is never empty
//   - exactly one session is current
//
// Deleting the last remaining session atomically creates a fresh
// replacement before the call returns.
type Registry struct {
	sessions map[string]*Session
	order    []string // session IDs in creation order
	current  string

	// created counts every session ever created; default names use it
	// so numbers are never reused after deletion.
	created int

	// events receives lifecycle events when non-nil. Appends are
	// best-effort: a failed append never fails the operation.
	events store.EventRepo

	now func() time.Time
}

// New creates a Registry holding one fresh session, which is current.
// events may be nil to disable lifecycle telemetry.
func New(events store.EventRepo) *Registry {
	r := &Registry{
		sessions: make(map[string]*Session),
		events:   events,
		now:      time.Now,
	}
	r.Create()
	return r
}

// Create allocates a new session with a default "Study Session N" name
// and makes it current. It never fails.
func (r *Registry) Create() *Session {
	r.created++
	s := newSession(uuid.NewString(), fmt.Sprintf("Study Session %d", r.created), r.now())

	r.sessions[s.ID] = s
	r.order = append(r.order, s.ID)
	r.current = s.ID

	r.record(s, "create", "")
	return s
}

// Switch makes the session with the given ID current.
func (r *Registry) Switch(id string) error {
	s, ok := r.sessions[id]
	if !ok {
		return &ErrSessionNotFound{ID: id}
	}
	r.current = id
	r.record(s, "switch", "")
	return nil
}

// Rename changes a session's display name.
func (r *Registry) Rename(id, name string) error {
	s, ok := r.sessions[id]
	if !ok {
		return &ErrSessionNotFound{ID: id}
	}
	old := s.Name
	s.Name = name
	r.record(s, "rename", old)
	return nil
}

// Delete removes a session. If the deleted session was current, another
// session becomes current; if none remain, a fresh session is created
// first, so the registry is never observably empty or current-less.
func (r *Registry) Delete(id string) error {
	s, ok := r.sessions[id]
	if !ok {
		return &ErrSessionNotFound{ID: id}
	}

	delete(r.sessions, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.record(s, "delete", "")

	if len(r.sessions) == 0 {
		r.Create()
		return nil
	}
	if r.current == id {
		r.current = r.order[0]
	}
	return nil
}

// Current returns the current session for mutation.
func (r *Registry) Current() *Session {
	return r.sessions[r.current]
}

// Sessions returns all sessions in creation order.
func (r *Registry) Sessions() []*Session {
	out := make([]*Session, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.sessions[id])
	}
	return out
}

// Len returns the number of sessions.
func (r *Registry) Len() int {
	return len(r.sessions)
}

// record appends a lifecycle event, best-effort.
func (r *Registry) record(s *Session, action, detail string) {
	if r.events == nil {
		return
	}
	err := r.events.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:   s.ID,
		SessionName: s.Name,
		Action:      action,
		Detail:      detail,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log session event: %v\n", err)
	}
}
