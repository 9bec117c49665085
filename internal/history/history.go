// Package history is the app-wide navigation stack. Components push a
// reversible marker when they take over the screen so that a back
// navigation undoes them instead of leaving the program.
package history

import (
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// MarkerID identifies a pushed marker.
type MarkerID string

// None is the sentinel for "no marker held".
const None MarkerID = ""

// ErrNilUndo is returned when pushing a marker without an undo callback.
var ErrNilUndo = errors.New("history: nil undo callback")

type entry struct {
	id   MarkerID
	undo func() tea.Cmd
}

// Stack is safe for concurrent use: pushes run inside tea.Cmds while pops
// and back navigation run on the Update goroutine.
type Stack struct {
	mu      sync.Mutex
	entries []entry
	newID   func() string
}

// New creates an empty stack.
func New() *Stack {
	return &Stack{newID: uuid.NewString}
}

// Push records a marker whose undo runs on back navigation.
func (s *Stack) Push(undo func() tea.Cmd) (MarkerID, error) {
	if undo == nil {
		return None, ErrNilUndo
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := MarkerID(s.newID())
	s.entries = append(s.entries, entry{id: id, undo: undo})
	return id, nil
}

// Pop removes the marker without running its undo. It reports whether the
// marker was still on the stack.
func (s *Stack) Pop(id MarkerID) bool {
	if id == None {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Back removes the top marker and runs its undo. With an empty stack it
// returns nil and the host decides what back means.
func (s *Stack) Back() tea.Cmd {
	s.mu.Lock()
	if len(s.entries) == 0 {
		s.mu.Unlock()
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	s.mu.Unlock()

	// undo may push or pop again
	return top.undo()
}

// Len returns the number of outstanding markers.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Contains reports whether the marker is outstanding.
func (s *Stack) Contains(id MarkerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.id == id {
			return true
		}
	}
	return false
}
