package planner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripbud/internal/metrics"
	"tripbud/internal/types"
)

// DefaultPendingTTL bounds how long a session stays pending when the
// instance running its submission disappears.
const DefaultPendingTTL = 2 * time.Minute

// awaitPoll is how often Await checks the store for submissions started by
// another instance.
const awaitPoll = 20 * time.Millisecond

// Recommender fetches recommendations for a trip request.
type Recommender interface {
	Recommend(ctx context.Context, req types.TripRequest) (*types.TripRecommendationResponse, error)
}

// Snapshot is what the view renders. Loading is true only while a
// submission for the session is pending, which only happens in the form stage.
type Snapshot struct {
	View    View
	Loading bool
}

type Option func(*Controller)

// WithPendingTTL sets the lifetime of the pending marker. It should exceed
// the recommender's own timeout.
func WithPendingTTL(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.pendingTTL = d
		}
	}
}

// Controller applies transitions to session views and runs submissions.
// At most one submission per session is in flight across every controller
// sharing the store.
type Controller struct {
	store      SessionStore
	client     Recommender
	log        *zap.Logger
	pendingTTL time.Duration
	sessions   *keyedMutex

	mu   sync.Mutex
	done map[string]chan struct{}
}

func NewController(store SessionStore, client Recommender, log *zap.Logger, opts ...Option) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{
		store:      store,
		client:     client,
		log:        log,
		pendingTTL: DefaultPendingTTL,
		sessions:   newKeyedMutex(),
		done:       make(map[string]chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Snapshot(ctx context.Context, sessionID string) (Snapshot, error) {
	pending, err := c.store.Pending(ctx, sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	v, err := c.store.Load(ctx, sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{View: v, Loading: pending && v.Kind() == StageForm}, nil
}

// Update loads the session view, applies fn and saves the result. Nothing is
// saved when fn fails. While a submission is pending the form is frozen and
// ErrSubmitInFlight is returned.
func (c *Controller) Update(ctx context.Context, sessionID string, fn func(View) (View, error)) error {
	unlock := c.sessions.Lock(sessionID)
	defer unlock()

	pending, err := c.store.Pending(ctx, sessionID)
	if err != nil {
		return err
	}
	if pending {
		return ErrSubmitInFlight
	}
	return c.apply(ctx, sessionID, fn)
}

// Reset returns the session to the form stage keeping the entered values.
func (c *Controller) Reset(ctx context.Context, sessionID string) error {
	unlock := c.sessions.Lock(sessionID)
	defer unlock()

	return c.apply(ctx, sessionID, func(v View) (View, error) {
		return Reset(v), nil
	})
}

func (c *Controller) apply(ctx context.Context, sessionID string, fn func(View) (View, error)) error {
	v, err := c.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	next, err := fn(v)
	if err != nil {
		return err
	}
	return c.store.Save(ctx, sessionID, next)
}

// Submit validates the form and, when it passes, starts the network call in
// the background. Validation failures are stored on the view and return nil.
// ErrSubmitInFlight is returned when a call for this session is still pending.
func (c *Controller) Submit(ctx context.Context, sessionID string) error {
	unlock := c.sessions.Lock(sessionID)

	token := uuid.NewString()
	acquired, err := c.store.AcquirePending(ctx, sessionID, token, c.pendingTTL)
	if err != nil {
		unlock()
		return err
	}
	if !acquired {
		unlock()
		metrics.Submissions.WithLabelValues(metrics.OutcomeInFlight).Inc()
		return ErrSubmitInFlight
	}
	abort := func(err error) error {
		if rerr := c.store.ReleasePending(context.WithoutCancel(ctx), sessionID, token); rerr != nil {
			c.log.Error("release pending", zap.String("session", sessionID), zap.Error(rerr))
		}
		unlock()
		return err
	}

	v, err := c.store.Load(ctx, sessionID)
	if err != nil {
		return abort(err)
	}
	next, req, ok, err := BeginSubmit(v)
	if err != nil {
		return abort(err)
	}
	if err := c.store.Save(ctx, sessionID, next); err != nil {
		return abort(err)
	}
	if !ok {
		metrics.Submissions.WithLabelValues(metrics.OutcomeValidationError).Inc()
		return abort(nil)
	}

	done := make(chan struct{})
	c.mu.Lock()
	c.done[sessionID] = done
	c.mu.Unlock()
	unlock()

	metrics.PendingSubmissions.Inc()
	go c.run(context.WithoutCancel(ctx), sessionID, token, req, done)
	return nil
}

func (c *Controller) run(ctx context.Context, sessionID, token string, req types.TripRequest, done chan struct{}) {
	resp, err := c.client.Recommend(ctx, req)
	if err == nil && resp == nil {
		err = errors.New("empty response")
	}

	log := c.log.With(zap.String("session", sessionID), zap.String("city", req.City))
	unlock := c.sessions.Lock(sessionID)
	defer func() {
		if rerr := c.store.ReleasePending(ctx, sessionID, token); rerr != nil {
			log.Error("release pending", zap.Error(rerr))
		}
		unlock()
		c.mu.Lock()
		if c.done[sessionID] == done {
			delete(c.done, sessionID)
		}
		c.mu.Unlock()
		metrics.PendingSubmissions.Dec()
		close(done)
	}()

	v, lerr := c.store.Load(ctx, sessionID)
	if lerr != nil {
		log.Error("load view after submission", zap.Error(lerr))
		return
	}
	if err != nil {
		log.Warn("recommendation request failed", zap.Error(err))
		metrics.Submissions.WithLabelValues(metrics.OutcomeFailure).Inc()
		v = Fail(v)
	} else {
		log.Info("recommendations received", zap.Int("count", len(resp.Recommendations)))
		metrics.Submissions.WithLabelValues(metrics.OutcomeSuccess).Inc()
		v = Complete(v, *resp)
	}
	if serr := c.store.Save(ctx, sessionID, v); serr != nil {
		log.Error("save view after submission", zap.Error(serr))
	}
}

// Await blocks until the pending submission of the session, if any, has been
// applied to its view. Submissions started by another controller are
// observed through the store.
func (c *Controller) Await(ctx context.Context, sessionID string) error {
	c.mu.Lock()
	done := c.done[sessionID]
	c.mu.Unlock()
	if done != nil {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return fmt.Errorf("await submission: %w", ctx.Err())
		}
	}

	ticker := time.NewTicker(awaitPoll)
	defer ticker.Stop()
	for {
		pending, err := c.store.Pending(ctx, sessionID)
		if err != nil {
			return err
		}
		if !pending {
			return nil
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return fmt.Errorf("await submission: %w", ctx.Err())
		}
	}
}
