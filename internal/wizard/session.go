// Package wizard holds the state of one itinerary editing session: the
// draft, the current step and day-0 mode. It is independent of any UI.
package wizard

import (
	"itinerary-studio/internal/model"
	"itinerary-studio/internal/mutate"
	"itinerary-studio/internal/store"

	"go.uber.org/zap"
)

type Session struct {
	repo *store.Repo
	log  *zap.Logger

	draft     model.Itinerary
	step      Step
	day0      bool
	editingID string
}

type Option func(*Session)

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSession starts a blank itinerary with a freshly generated code.
func NewSession(repo *store.Repo, opts ...Option) *Session {
	s := &Session{repo: repo, log: zap.NewNop(), step: StepSummary}
	for _, opt := range opts {
		opt(s)
	}
	s.draft = model.NewDraft(repo.Now())
	s.draft.ItineraryCode = repo.NextItineraryCode()
	return s
}

// OpenSession loads a copy of the itinerary with id or code ref for editing.
func OpenSession(repo *store.Repo, ref string, opts ...Option) (*Session, error) {
	it, ok := repo.FindItineraryByRef(ref)
	if !ok {
		return nil, store.NotFoundError{Kind: "itinerary", ID: ref}
	}
	s := &Session{repo: repo, log: zap.NewNop(), step: StepSummary}
	for _, opt := range opts {
		opt(s)
	}
	s.draft = it
	s.editingID = it.ID
	s.day0 = mutate.InferDay0(it.DayPlans)
	return s, nil
}

// Draft returns a copy of the itinerary being edited.
func (s *Session) Draft() model.Itinerary { return s.draft.Clone() }

func (s *Session) Step() Step        { return s.step }
func (s *Session) Day0Enabled() bool { return s.day0 }

// Editing reports whether Save updates an existing itinerary.
func (s *Session) Editing() bool { return s.editingID != "" }

func (s *Session) Next() {
	if s.step < StepPolicies {
		s.step++
	}
}

func (s *Session) Previous() {
	if s.step > StepSummary {
		s.step--
	}
}

// Jump moves to step; an invalid step is ignored.
func (s *Session) Jump(step Step) {
	if step.Valid() {
		s.step = step
	}
}

// SetField updates a scalar draft field. See FieldKeys for accepted keys.
func (s *Session) SetField(key, value string) error {
	err := setField(&s.draft, key, value)
	if err != nil {
		s.log.Warn("draft field coerced or rejected", zap.String("field", key), zap.Error(err))
	}
	return err
}

func (s *Session) Field(key string) (string, bool) { return getField(s.draft, key) }

func (s *Session) AddDay() {
	s.draft.DayPlans = mutate.AddDay(s.draft.DayPlans, s.day0)
}

func (s *Session) RemoveDay(id string) {
	s.draft.DayPlans = mutate.RemoveDay(s.draft.DayPlans, id, s.day0)
}

// SetDay0 switches day-0 mode; setting the current value does nothing.
func (s *Session) SetDay0(enabled bool) {
	if enabled == s.day0 {
		return
	}
	s.day0 = enabled
	s.draft.DayPlans = mutate.ToggleDay0(s.draft.DayPlans, enabled)
}

// ApplyKeyword is called on every keystroke in a day's keyword field.
func (s *Session) ApplyKeyword(dayID, typed string) {
	s.draft.DayPlans = mutate.ApplyKeyword(s.draft.DayPlans, dayID, typed, s.repo)
}

func (s *Session) UpdateDay(id string, p mutate.DayPatch) {
	s.draft.DayPlans = mutate.UpdateDay(s.draft.DayPlans, id, p)
}

func (s *Session) AddHeading(title, content string) {
	s.draft.CustomHeadings = mutate.AddHeading(s.draft.CustomHeadings, title, content)
}

func (s *Session) UpdateHeading(id string, p mutate.HeadingPatch) {
	s.draft.CustomHeadings = mutate.UpdateHeading(s.draft.CustomHeadings, id, p)
}

func (s *Session) RemoveHeading(id string) {
	s.draft.CustomHeadings = mutate.RemoveHeading(s.draft.CustomHeadings, id)
}

func (s *Session) AddPricingSlot(label string) {
	s.draft.PricingSlots = mutate.AddPricingSlot(s.draft.PricingSlots, label)
}

func (s *Session) UpdatePricingSlot(id string, p mutate.PricingPatch) {
	s.draft.PricingSlots = mutate.UpdatePricingSlot(s.draft.PricingSlots, id, p)
}

// SetPrice coerces text to a price; unusable input stores 0 and the coercion
// error is returned for display.
func (s *Session) SetPrice(id, text string) error {
	v, err := model.CoercePrice(text)
	if err != nil {
		s.log.Warn("price coerced", zap.String("slot", id), zap.Error(err))
	}
	s.UpdatePricingSlot(id, mutate.PricingPatch{Price: &v})
	return err
}

func (s *Session) RemovePricingSlot(id string) {
	s.draft.PricingSlots = mutate.RemovePricingSlot(s.draft.PricingSlots, id)
}

// Save writes the draft. A new itinerary gets a fresh id and timestamps and
// keeps the session's code unless another itinerary took it meanwhile; the
// session then continues in edit mode.
func (s *Session) Save() (model.Itinerary, error) {
	if s.Editing() {
		it, err := s.repo.UpdateItinerary(s.editingID, store.FullPatch(s.draft))
		if err != nil {
			return model.Itinerary{}, err
		}
		s.draft = it
		return it.Clone(), nil
	}

	now := s.repo.Now()
	it := s.draft.Clone()
	it.ID = s.repo.NewID()
	if it.ItineraryCode == "" || s.repo.CodeTaken(it.ItineraryCode) {
		it.ItineraryCode = s.repo.NextItineraryCode()
	}
	it.CreatedAt = now
	it.UpdatedAt = now
	err := s.repo.AddItinerary(it)
	if _, ok := s.repo.GetItinerary(it.ID); !ok {
		return model.Itinerary{}, err
	}
	s.draft = it
	s.editingID = it.ID
	s.log.Info("itinerary created", zap.String("id", it.ID), zap.String("code", it.ItineraryCode))
	return it.Clone(), err
}
