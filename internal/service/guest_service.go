package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"connectrpc.com/connect"

	"github.com/mmynk/guestlist/internal/guests"
	"github.com/mmynk/guestlist/internal/models"
	"github.com/mmynk/guestlist/pkg/api"
	"github.com/mmynk/guestlist/pkg/api/apiconnect"
)

// Ensure GuestService implements the Connect handler interface
var _ apiconnect.GuestServiceHandler = (*GuestService)(nil)

// GuestService implements the Connect GuestService on top of one guest store.
// Handlers are serialized: the store has a single writer.
type GuestService struct {
	mu    sync.Mutex
	store *guests.Store
}

// NewGuestService creates a new GuestService backed by store.
func NewGuestService(store *guests.Store) *GuestService {
	return &GuestService{store: store}
}

// AddGuest validates the submitted form and appends a guest.
func (s *GuestService) AddGuest(ctx context.Context, req *connect.Request[api.AddGuestRequest]) (*connect.Response[api.AddGuestResponse], error) {
	slog.Info("AddGuest request received",
		"age", req.Msg.Age,
		"major", req.Msg.Major,
	)
	slog.Debug("AddGuest form", "name", req.Msg.Name)

	var draft models.Draft
	draft.SetName(req.Msg.Name)
	draft.SetAge(req.Msg.Age)
	draft.SetMajor(req.Msg.Major)
	draft.SetHobbies(req.Msg.Hobbies)

	s.mu.Lock()
	guest, err := s.store.Add(ctx, &draft)
	s.mu.Unlock()
	if err != nil {
		if errors.Is(err, guests.ErrValidation) {
			slog.Warn("AddGuest rejected", "age", req.Msg.Age, "error", err)
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		slog.Error("AddGuest failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Guest created", "guest_id", guest.ID)

	return connect.NewResponse(&api.AddGuestResponse{
		Guest: toAPIGuest(guest),
	}), nil
}

// ListGuests returns every guest in insertion order.
func (s *GuestService) ListGuests(ctx context.Context, req *connect.Request[api.ListGuestsRequest]) (*connect.Response[api.ListGuestsResponse], error) {
	slog.Info("ListGuests request received")

	s.mu.Lock()
	list := s.store.List()
	s.mu.Unlock()

	// Convert to wire format
	apiGuests := make([]*api.Guest, len(list))
	for i, g := range list {
		apiGuests[i] = toAPIGuest(g)
	}

	slog.Info("ListGuests successful", "count", len(list))

	return connect.NewResponse(&api.ListGuestsResponse{
		Guests: apiGuests,
	}), nil
}

// SelectGuest sets the guest shown in the details view.
func (s *GuestService) SelectGuest(ctx context.Context, req *connect.Request[api.SelectGuestRequest]) (*connect.Response[api.SelectGuestResponse], error) {
	slog.Info("SelectGuest request received", "guest_id", req.Msg.ID)

	s.mu.Lock()
	guest, ok := s.store.Select(req.Msg.ID)
	s.mu.Unlock()

	resp := &api.SelectGuestResponse{}
	if ok {
		resp.Guest = toAPIGuest(guest)
	}

	slog.Info("SelectGuest successful", "guest_id", req.Msg.ID, "selected", ok)
	return connect.NewResponse(resp), nil
}

// GetSelection returns the guest shown in the details view, if any.
func (s *GuestService) GetSelection(ctx context.Context, req *connect.Request[api.GetSelectionRequest]) (*connect.Response[api.GetSelectionResponse], error) {
	s.mu.Lock()
	guest, ok := s.store.Selected()
	s.mu.Unlock()

	resp := &api.GetSelectionResponse{}
	if ok {
		resp.Guest = toAPIGuest(guest)
	}
	return connect.NewResponse(resp), nil
}

// DeleteGuest removes a guest by ID. Unknown ids are not an error.
func (s *GuestService) DeleteGuest(ctx context.Context, req *connect.Request[api.DeleteGuestRequest]) (*connect.Response[api.DeleteGuestResponse], error) {
	slog.Info("DeleteGuest request received", "guest_id", req.Msg.ID)

	s.mu.Lock()
	_, wasSelected := s.store.Selected()
	deleted := s.store.Remove(ctx, req.Msg.ID)
	_, stillSelected := s.store.Selected()
	s.mu.Unlock()

	if deleted {
		slog.Info("Guest deleted", "guest_id", req.Msg.ID)
	} else {
		slog.Debug("DeleteGuest: no such guest", "guest_id", req.Msg.ID)
	}

	return connect.NewResponse(&api.DeleteGuestResponse{
		Deleted:          deleted,
		SelectionCleared: wasSelected && !stillSelected,
	}), nil
}

func toAPIGuest(g models.Guest) *api.Guest {
	return &api.Guest{
		ID:      g.ID,
		Name:    g.Name,
		Age:     g.Age,
		Major:   g.Major,
		Hobbies: g.Hobbies,
	}
}
