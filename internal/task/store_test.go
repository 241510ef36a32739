package task

import (
	"path/filepath"
	"strings"
	"testing"

	"taskpad/internal/storage"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.json")
	prefs, err := storage.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	s := NewStore(prefs)
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return s, path
}

// reload opens a fresh store over the same preference file, simulating a
// process restart.
func reload(t *testing.T, path string) *Store {
	t.Helper()
	prefs, err := storage.Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	s := NewStore(prefs)
	if err := s.Load(); err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	return s
}

func TestLoadFreshStore(t *testing.T) {
	s, _ := newTestStore(t)
	if s.Len() != 0 {
		t.Errorf("fresh store has %d tasks, want 0", s.Len())
	}
}

func TestAddAppendsOne(t *testing.T) {
	s, path := newTestStore(t)

	added, err := s.Add("Buy milk")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("length: got %d, want 1", s.Len())
	}
	if added.Done {
		t.Error("added task has Done=true, want false")
	}
	if added.Name != "Buy milk" {
		t.Errorf("added task name: got %q, want %q", added.Name, "Buy milk")
	}

	// The mutation must already be durable.
	got := reload(t, path).Tasks()
	if len(got) != 1 || got[0] != added {
		t.Errorf("after reload: got %+v, want [%+v]", got, added)
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	s, _ := newTestStore(t)
	added, err := s.Add("Walk dog")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	first, err := s.ToggleDone(added.ID)
	if err != nil {
		t.Fatalf("ToggleDone failed: %v", err)
	}
	if !first.Done {
		t.Error("first toggle: got Done=false, want true")
	}

	second, err := s.ToggleDone(added.ID)
	if err != nil {
		t.Fatalf("ToggleDone failed: %v", err)
	}
	if second.Done {
		t.Error("second toggle: got Done=true, want false")
	}
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Add("Walk dog"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := s.ToggleDone("no-such-id")
	if err != nil {
		t.Fatalf("ToggleDone failed: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("toggling unknown ID returned %+v, want zero task", got)
	}
	if s.Tasks()[0].Done {
		t.Error("toggling unknown ID changed an existing task")
	}
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Add("Buy milk"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := s.Remove("no-such-id"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("length after removing unknown ID: got %d, want 1", s.Len())
	}
}

func TestRemove(t *testing.T) {
	s, path := newTestStore(t)
	first, _ := s.Add("one")
	second, _ := s.Add("two")
	third, _ := s.Add("three")

	if err := s.Remove(second.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	got := reload(t, path).Tasks()
	if len(got) != 2 {
		t.Fatalf("length: got %d, want 2", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != third.ID {
		t.Errorf("order after remove: got [%s %s], want [%s %s]",
			got[0].ID, got[1].ID, first.ID, third.ID)
	}
}

// The round-trip law: any sequence of mutations, reloaded, reproduces
// the same tasks with the same flags in the same relative order.
func TestMutationSequenceRoundTrip(t *testing.T) {
	s, path := newTestStore(t)

	a, _ := s.Add("alpha")
	b, _ := s.Add("beta")
	c, _ := s.Add("gamma")
	if _, err := s.ToggleDone(b.ID); err != nil {
		t.Fatalf("ToggleDone failed: %v", err)
	}
	if err := s.Remove(a.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	d, _ := s.Add("delta")
	if _, err := s.ToggleDone(c.ID); err != nil {
		t.Fatalf("ToggleDone failed: %v", err)
	}
	if _, err := s.ToggleDone(c.ID); err != nil {
		t.Fatalf("ToggleDone failed: %v", err)
	}

	want := []Task{
		{ID: b.ID, Name: "beta", Done: true},
		{ID: c.ID, Name: "gamma", Done: false},
		{ID: d.ID, Name: "delta", Done: false},
	}
	got := reload(t, path).Tasks()
	if len(got) != len(want) {
		t.Fatalf("length: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("task %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadCorruptValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	prefs, err := storage.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	// Valid JSON for the store, invalid shape for the task list.
	if err := prefs.Set(PrefsKey, []byte(`{"oops":true}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	s := NewStore(prefs)
	err = s.Load()
	if err == nil {
		t.Fatal("Load succeeded on corrupt value, want error")
	}
	if !strings.Contains(err.Error(), "corrupt") {
		t.Errorf("error %q does not mention corruption", err)
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Add("alpha"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got := s.Tasks()
	got[0].Name = "mutated"
	if s.Tasks()[0].Name != "alpha" {
		t.Error("mutating the returned slice changed store state")
	}
}
