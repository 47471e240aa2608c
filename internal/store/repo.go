package store

import (
	"context"
	"fmt"
	"time"

	"itinerary-studio/internal/model"

	"go.uber.org/zap"
)

// State is the full persisted snapshot: both collections, newest first.
type State struct {
	Itineraries []model.Itinerary `json:"itineraries"`
	Keywords    []model.Keyword   `json:"keywords"`
}

func (s State) Clone() State {
	out := State{
		Itineraries: make([]model.Itinerary, len(s.Itineraries)),
		Keywords:    make([]model.Keyword, len(s.Keywords)),
	}
	for i, it := range s.Itineraries {
		out.Itineraries[i] = it.Clone()
	}
	for i, k := range s.Keywords {
		out.Keywords[i] = k.Clone()
	}
	return out
}

// Persister durably stores and retrieves a State snapshot.
type Persister interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, st *State) error
}

// Change describes one successful repository mutation.
type Change struct {
	Type     string    `json:"type"`
	EntityID string    `json:"entityId"`
	TS       time.Time `json:"ts"`
	Payload  any       `json:"payload,omitempty"`
}

// Repo owns the itinerary and keyword collections. Every mutation replaces the
// affected collection with a new slice, then hands a snapshot to the persist
// callback. A Repo is meant for one editing session and is not safe for
// concurrent use.
type Repo struct {
	itineraries []model.Itinerary
	keywords    []model.Keyword

	now      func() time.Time
	newID    func() string
	persist  func(State) error
	onChange func(Change)
	log      *zap.Logger
}

type Option func(*Repo)

func WithClock(now func() time.Time) Option {
	return func(r *Repo) { r.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(r *Repo) { r.newID = newID }
}

// WithPersist sets the callback invoked with a full snapshot after every
// successful mutation.
func WithPersist(fn func(State) error) Option {
	return func(r *Repo) { r.persist = fn }
}

// WithEvents registers a hook called for every successful mutation, before persisting.
func WithEvents(fn func(Change)) Option {
	return func(r *Repo) { r.onChange = fn }
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Repo) {
		if l != nil {
			r.log = l
		}
	}
}

func NewRepo(st *State, opts ...Option) *Repo {
	r := &Repo{
		now:   func() time.Time { return time.Now().UTC() },
		newID: NewID,
		log:   zap.NewNop(),
	}
	if st != nil {
		cp := st.Clone()
		r.itineraries = cp.Itineraries
		r.keywords = cp.Keywords
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open loads the persisted state from p and returns a Repo that writes every
// mutation back to p.
func Open(ctx context.Context, p Persister, opts ...Option) (*Repo, error) {
	st, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	persist := WithPersist(func(s State) error { return p.Save(ctx, &s) })
	return NewRepo(st, append([]Option{persist}, opts...)...), nil
}

// Snapshot returns a deep copy of the current state.
func (r *Repo) Snapshot() State {
	return State{Itineraries: r.itineraries, Keywords: r.keywords}.Clone()
}

// Now is the repository clock.
func (r *Repo) Now() time.Time { return r.now() }

// NewID generates an identifier with the repository's generator.
func (r *Repo) NewID() string { return r.newID() }

func (r *Repo) commit(typ, entityID string, payload any) error {
	r.log.Debug("store mutation", zap.String("type", typ), zap.String("entity", entityID))
	if r.onChange != nil {
		r.onChange(Change{Type: typ, EntityID: entityID, TS: r.now(), Payload: payload})
	}
	if r.persist == nil {
		return nil
	}
	if err := r.persist(r.Snapshot()); err != nil {
		r.log.Error("persist snapshot failed", zap.String("type", typ), zap.Error(err))
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}
