package task

import (
	"errors"
	"fmt"

	"taskpad/internal/storage"
)

// PrefsKey is the preference store key holding the serialized task list.
const PrefsKey = "tasks"

// Store is the ordered in-memory task list. Every mutation rewrites the
// full persisted value before returning; there is no delta persistence.
type Store struct {
	prefs *storage.Prefs
	tasks []Task
}

// NewStore creates an empty store backed by prefs. Call Load before use.
func NewStore(prefs *storage.Prefs) *Store {
	return &Store{prefs: prefs}
}

// Load reads the persisted task list. An absent key is a valid initial
// state and yields an empty list; corrupt data surfaces as an error so
// the caller can decide what to do with the file.
func (s *Store) Load() error {
	raw, err := s.prefs.Get(PrefsKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.tasks = nil
			return nil
		}
		return err
	}

	tasks, err := Decode(raw)
	if err != nil {
		return fmt.Errorf("stored task list is corrupt: %w", err)
	}
	s.tasks = tasks
	return nil
}

// Tasks returns a copy of the current sequence in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Add appends a new task with the given name and persists the list.
func (s *Store) Add(name string) (Task, error) {
	t := New(name)
	s.tasks = append(s.tasks, t)
	if err := s.persist(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Remove deletes the task with the given ID and persists the list.
// Removing an unknown ID is a no-op.
func (s *Store) Remove(id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// ToggleDone flips the completion flag of the task with the given ID,
// preserving order, and persists the list. Toggling an unknown ID is a
// no-op returning a zero Task.
func (s *Store) ToggleDone(id string) (Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Done = !s.tasks[i].Done
			if err := s.persist(); err != nil {
				return Task{}, err
			}
			return s.tasks[i], nil
		}
	}
	return Task{}, nil
}

func (s *Store) persist() error {
	data, err := Encode(s.tasks)
	if err != nil {
		return err
	}
	if err := s.prefs.Set(PrefsKey, data); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}
