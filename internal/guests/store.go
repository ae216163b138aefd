package guests

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/mmynk/guestlist/internal/metrics"
	"github.com/mmynk/guestlist/internal/models"
)

// Listener is notified with a copy of the full list after every change.
type Listener func(ctx context.Context, list []models.Guest)

// Store is the in-memory, ordered guest list plus the current selection.
// It is the single source of truth for the list and the details view.
type Store struct {
	guests    []models.Guest
	selection *models.Guest

	policy    IDPolicy
	lastID    int
	listeners []Listener
	metrics   *metrics.Metrics
}

// Option configures a Store.
type Option func(*Store)

// WithIDPolicy sets how ids are assigned. The default is CounterIDs.
func WithIDPolicy(p IDPolicy) Option {
	return func(s *Store) { s.policy = p }
}

// WithMetrics records list size and rejections on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// NewStore creates a Store holding a copy of initial.
// Records in initial are not re-validated.
func NewStore(initial []models.Guest, opts ...Option) *Store {
	s := &Store{
		guests: cloneGuests(initial),
		lastID: maxID(initial),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics.SetGuests(len(s.guests))
	return s
}

// Subscribe registers l and immediately delivers the current list to it,
// the same way a view sees the list on its first render.
func (s *Store) Subscribe(ctx context.Context, l Listener) {
	s.listeners = append(s.listeners, l)
	l(ctx, s.List())
}

// Add validates d and appends a new guest built from it.
// On success the draft is reset and listeners are notified. On failure the
// error is a *ValidationError and neither the store nor d is modified.
func (s *Store) Add(ctx context.Context, d *models.Draft) (models.Guest, error) {
	if err := Validate(*d); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			s.metrics.ObserveRejection(string(verr.Reason))
		}
		slog.Debug("Guest rejected", "name", d.Name, "age", d.Age, "error", err)
		return models.Guest{}, err
	}

	g := models.Guest{
		ID:      s.nextID(),
		Name:    d.Name,
		Age:     d.Age,
		Major:   d.Major,
		Hobbies: models.ParseHobbies(d.Hobbies),
	}
	s.guests = append(s.guests, g)
	s.lastID = max(s.lastID, g.ID)
	d.Reset()

	slog.Info("Guest added", "guest_id", g.ID, "age", g.Age)
	s.changed(ctx)
	return cloneGuest(g), nil
}

// Remove deletes every guest with the given id and reports whether any was
// removed. A missing id is a no-op and does not notify listeners.
// The selection is cleared if it pointed at the removed id.
func (s *Store) Remove(ctx context.Context, id int) bool {
	before := len(s.guests)
	s.guests = slices.DeleteFunc(s.guests, func(g models.Guest) bool { return g.ID == id })
	if len(s.guests) == before {
		return false
	}

	if s.selection != nil && s.selection.ID == id {
		s.selection = nil
	}

	slog.Info("Guest removed", "guest_id", id, "remaining", len(s.guests))
	s.changed(ctx)
	return true
}

// Select makes the guest with the given id the current selection.
// An id of 0 or an unknown id clears the selection.
func (s *Store) Select(id int) (models.Guest, bool) {
	s.selection = nil
	if id == 0 {
		return models.Guest{}, false
	}
	for _, g := range s.guests {
		if g.ID == id {
			sel := cloneGuest(g)
			s.selection = &sel
			return cloneGuest(sel), true
		}
	}
	return models.Guest{}, false
}

// Selected returns the current selection, if any.
func (s *Store) Selected() (models.Guest, bool) {
	if s.selection == nil {
		return models.Guest{}, false
	}
	return cloneGuest(*s.selection), true
}

// Get returns the first guest with the given id.
func (s *Store) Get(id int) (models.Guest, bool) {
	for _, g := range s.guests {
		if g.ID == id {
			return cloneGuest(g), true
		}
	}
	return models.Guest{}, false
}

// List returns a copy of the guests in insertion order.
func (s *Store) List() []models.Guest {
	return cloneGuests(s.guests)
}

// Len returns the number of guests.
func (s *Store) Len() int {
	return len(s.guests)
}

func (s *Store) nextID() int {
	if s.policy == LengthIDs {
		return len(s.guests) + 1
	}
	return s.lastID + 1
}

func (s *Store) changed(ctx context.Context) {
	s.metrics.SetGuests(len(s.guests))
	for _, l := range s.listeners {
		l(ctx, s.List())
	}
}

func cloneGuest(g models.Guest) models.Guest {
	g.Hobbies = slices.Clone(g.Hobbies)
	return g
}

func cloneGuests(list []models.Guest) []models.Guest {
	out := make([]models.Guest, len(list))
	for i, g := range list {
		out[i] = cloneGuest(g)
	}
	return out
}
