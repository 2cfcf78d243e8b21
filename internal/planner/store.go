// README: Session stores for planner views (in-memory and Redis).
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"tripbud/internal/types"
)

// SessionStore persists one View per browser session. Loading an unknown
// session yields a fresh form.
//
// The store also holds the pending-submission marker so every web instance
// sharing the store agrees on it. AcquirePending is atomic: it reports false
// when a submission is already pending. The marker expires after ttl so a
// crashed instance cannot pin a session in the loading state.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (View, error)
	Save(ctx context.Context, sessionID string, v View) error

	AcquirePending(ctx context.Context, sessionID, token string, ttl time.Duration) (bool, error)
	// ReleasePending clears the marker only when it is still held by token.
	ReleasePending(ctx context.Context, sessionID, token string) error
	Pending(ctx context.Context, sessionID string) (bool, error)
}

// envelope is the serialized form of a View.
type envelope struct {
	Stage    StageKind                         `json:"stage"`
	Form     types.TripRequest                 `json:"form"`
	Error    string                            `json:"error,omitempty"`
	Response *types.TripRecommendationResponse `json:"response,omitempty"`
}

func encodeView(v View) ([]byte, error) {
	env := envelope{Stage: v.Kind(), Form: v.Form()}
	switch s := v.(type) {
	case FormStage:
		env.Error = s.Error
	case ResultsStage:
		resp := s.Response
		env.Response = &resp
	}
	return json.Marshal(env)
}

func decodeView(raw []byte) (View, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode view: %w", err)
	}
	if env.Form.Interests == nil {
		env.Form.Interests = []string{}
	}
	switch env.Stage {
	case StageForm:
		return FormStage{Data: env.Form, Error: env.Error}, nil
	case StageResults:
		if env.Response == nil {
			return nil, fmt.Errorf("decode view: results stage without response")
		}
		return ResultsStage{Data: env.Form, Response: *env.Response}, nil
	default:
		return nil, fmt.Errorf("decode view: unknown stage %q", env.Stage)
	}
}

type memoryEntry struct {
	view      View
	expiresAt time.Time
}

type pendingEntry struct {
	token     string
	expiresAt time.Time
}

// MemoryStore keeps views in process memory. Entries expire after ttl of
// inactivity; a zero ttl keeps them forever. Expired entries are dropped on
// access and by Sweep.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	data    map[string]memoryEntry
	pending map[string]pendingEntry
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		data:    make(map[string]memoryEntry),
		pending: make(map[string]pendingEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (View, error) {
	s.mu.RLock()
	e, ok := s.data[sessionID]
	s.mu.RUnlock()
	if !ok {
		return NewView(), nil
	}
	if s.ttl > 0 && s.now().After(e.expiresAt) {
		s.mu.Lock()
		if e, ok := s.data[sessionID]; ok && s.now().After(e.expiresAt) {
			delete(s.data, sessionID)
		}
		s.mu.Unlock()
		return NewView(), nil
	}
	return e.view, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, v View) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = memoryEntry{view: v, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) AcquirePending(_ context.Context, sessionID, token string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if p, ok := s.pending[sessionID]; ok && now.Before(p.expiresAt) {
		return false, nil
	}
	s.pending[sessionID] = pendingEntry{token: token, expiresAt: now.Add(ttl)}
	return true, nil
}

func (s *MemoryStore) ReleasePending(_ context.Context, sessionID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.pending[sessionID]; ok && p.token == token {
		delete(s.pending, sessionID)
	}
	return nil
}

func (s *MemoryStore) Pending(_ context.Context, sessionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pending[sessionID]
	return ok && s.now().Before(p.expiresAt), nil
}

// Sweep drops expired views and pending markers. It returns how many views
// were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	if s.ttl > 0 {
		for id, e := range s.data {
			if now.After(e.expiresAt) {
				delete(s.data, id)
				removed++
			}
		}
	}
	for id, p := range s.pending {
		if !now.Before(p.expiresAt) {
			delete(s.pending, id)
		}
	}
	return removed
}

// Len reports how many views are held, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *MemoryStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
