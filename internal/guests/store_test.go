package guests

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mmynk/guestlist/internal/models"
)

func mustAdd(t *testing.T, s *Store, d models.Draft) models.Guest {
	t.Helper()
	g, err := s.Add(context.Background(), &d)
	if err != nil {
		t.Fatalf("Add(%+v) failed: %v", d, err)
	}
	return g
}

func TestStore_AddScenario(t *testing.T) {
	s := NewStore(nil)

	draft := models.Draft{Name: "Ana", Age: 20, Major: true, Hobbies: "reading, chess"}
	if _, err := s.Add(context.Background(), &draft); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	want := []models.Guest{
		{ID: 1, Name: "Ana", Age: 20, Major: true, Hobbies: []string{"reading", "chess"}},
	}
	if diff := cmp.Diff(want, s.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
	if draft != (models.Draft{}) {
		t.Errorf("draft not reset after add: %+v", draft)
	}
}

func TestStore_AddRejected(t *testing.T) {
	s := NewStore(nil)

	draft := models.Draft{Name: "Lou", Age: 15, Major: true, Hobbies: "art"}
	original := draft

	_, err := s.Add(context.Background(), &draft)
	if !errors.Is(err, ErrMinorMarkedAdult) {
		t.Fatalf("Add() error = %v, want ErrMinorMarkedAdult", err)
	}
	if s.Len() != 0 {
		t.Errorf("store length = %d, want 0", s.Len())
	}
	if draft != original {
		t.Errorf("draft changed on rejection: %+v", draft)
	}
}

func TestStore_AddAssignsSequentialIDs(t *testing.T) {
	s := NewStore(nil)
	for i, name := range []string{"A", "B", "C"} {
		prev := s.Len()
		g := mustAdd(t, s, models.Draft{Name: name, Age: 30, Hobbies: " x ,y,, z "})
		if g.ID != prev+1 {
			t.Errorf("guest %d id = %d, want %d", i, g.ID, prev+1)
		}
		if diff := cmp.Diff([]string{"x", "y", "z"}, g.Hobbies); diff != "" {
			t.Errorf("hobbies mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestStore_RemoveMissingIsNoop(t *testing.T) {
	s := NewStore(nil)
	mustAdd(t, s, models.Draft{Name: "A", Age: 30, Hobbies: "x"})

	notified := 0
	s.Subscribe(context.Background(), func(context.Context, []models.Guest) { notified++ })
	before := s.List()

	if s.Remove(context.Background(), 42) {
		t.Error("Remove(42) reported a removal")
	}
	if diff := cmp.Diff(before, s.List()); diff != "" {
		t.Errorf("list changed (-want +got):\n%s", diff)
	}
	if notified != 1 {
		t.Errorf("listener called %d times, want only the initial delivery", notified)
	}
}

func TestStore_RemoveClearsSelection(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil)
	first := mustAdd(t, s, models.Draft{Name: "First", Age: 30, Hobbies: "x"})
	second := mustAdd(t, s, models.Draft{Name: "Second", Age: 30, Hobbies: "y"})

	if _, ok := s.Select(first.ID); !ok {
		t.Fatal("Select(first) failed")
	}
	if !s.Remove(ctx, first.ID) {
		t.Fatal("Remove(first) reported no removal")
	}

	if _, ok := s.Selected(); ok {
		t.Error("selection not cleared after removing the selected guest")
	}
	if diff := cmp.Diff([]models.Guest{second}, s.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_RemoveKeepsOtherSelection(t *testing.T) {
	s := NewStore(nil)
	first := mustAdd(t, s, models.Draft{Name: "First", Age: 30, Hobbies: "x"})
	second := mustAdd(t, s, models.Draft{Name: "Second", Age: 30, Hobbies: "y"})

	s.Select(second.ID)
	s.Remove(context.Background(), first.ID)

	got, ok := s.Selected()
	if !ok || got.ID != second.ID {
		t.Errorf("Selected() = %+v, %v; want second guest", got, ok)
	}
}

func TestStore_Select(t *testing.T) {
	s := NewStore(nil)
	g := mustAdd(t, s, models.Draft{Name: "Ana", Age: 20, Hobbies: "x"})

	t.Run("known id", func(t *testing.T) {
		got, ok := s.Select(g.ID)
		if !ok {
			t.Fatal("Select failed")
		}
		if diff := cmp.Diff(g, got); diff != "" {
			t.Errorf("Select mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty id clears", func(t *testing.T) {
		s.Select(g.ID)
		if _, ok := s.Select(0); ok {
			t.Error("Select(0) returned a guest")
		}
		if _, ok := s.Selected(); ok {
			t.Error("selection not cleared")
		}
	})

	t.Run("unknown id clears", func(t *testing.T) {
		s.Select(g.ID)
		if _, ok := s.Select(99); ok {
			t.Error("Select(99) returned a guest")
		}
		if _, ok := s.Selected(); ok {
			t.Error("selection not cleared")
		}
	})
}

func TestStore_ListIsACopy(t *testing.T) {
	s := NewStore(nil)
	mustAdd(t, s, models.Draft{Name: "Ana", Age: 20, Hobbies: "x"})

	list := s.List()
	list[0].Name = "Mallory"
	list[0].Hobbies[0] = "tampering"

	got, _ := s.Get(1)
	if got.Name != "Ana" || got.Hobbies[0] != "x" {
		t.Errorf("store mutated through List(): %+v", got)
	}
}

func TestStore_LengthIDsCollideAfterDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil, WithIDPolicy(LengthIDs))

	a := mustAdd(t, s, models.Draft{Name: "A", Age: 30, Hobbies: "x"})
	b := mustAdd(t, s, models.Draft{Name: "B", Age: 30, Hobbies: "x"})
	s.Remove(ctx, a.ID)
	c := mustAdd(t, s, models.Draft{Name: "C", Age: 30, Hobbies: "x"})

	if c.ID != b.ID {
		t.Fatalf("expected length policy to reuse id %d, got %d", b.ID, c.ID)
	}

	// Both guests now answer to the same id; deleting one deletes both.
	s.Remove(ctx, b.ID)
	if s.Len() != 0 {
		t.Errorf("expected both colliding guests to be removed, %d left", s.Len())
	}
}

func TestStore_CounterIDsNeverRepeat(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil)

	seen := map[int]bool{}
	for round := 0; round < 5; round++ {
		g := mustAdd(t, s, models.Draft{Name: "G", Age: 30, Hobbies: "x"})
		if seen[g.ID] {
			t.Fatalf("id %d handed out twice", g.ID)
		}
		seen[g.ID] = true
		if round%2 == 0 {
			s.Remove(ctx, g.ID)
		}
	}
}

func TestStore_CounterSeededFromInitial(t *testing.T) {
	initial := []models.Guest{
		{ID: 7, Name: "Old", Age: 30, Hobbies: []string{"x"}},
		{ID: 3, Name: "Older", Age: 40, Hobbies: []string{"y"}},
	}
	s := NewStore(initial)

	g := mustAdd(t, s, models.Draft{Name: "New", Age: 20, Hobbies: "z"})
	if g.ID != 8 {
		t.Errorf("id = %d, want 8", g.ID)
	}
}

func TestStore_SubscribeNotifiesOnChange(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil)

	var lengths []int
	s.Subscribe(ctx, func(_ context.Context, list []models.Guest) {
		lengths = append(lengths, len(list))
	})

	g := mustAdd(t, s, models.Draft{Name: "A", Age: 30, Hobbies: "x"})
	d := models.Draft{Name: "bad"}
	s.Add(ctx, &d) // rejected, no notification
	s.Remove(ctx, g.ID)

	if diff := cmp.Diff([]int{0, 1, 0}, lengths); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}
