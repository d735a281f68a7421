package store

import (
	"sync"

	"github.com/theirongolddev/spent/internal/model"
)

// Memory is a slice-backed Backend.
type Memory struct {
	mu       sync.RWMutex
	expenses []model.Expense
	closed   bool
}

// NewMemory returns an empty Memory backend.
func NewMemory() *Memory {
	return &Memory{}
}

// List returns a copy of the expenses in display order.
func (m *Memory) List() ([]model.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}
	out := make([]model.Expense, len(m.expenses))
	copy(out, m.expenses)
	return out, nil
}

// Insert prepends e.
func (m *Memory) Insert(e model.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if m.indexOf(e.ID) >= 0 {
		return ErrDuplicateID
	}
	m.expenses = append([]model.Expense{e}, m.expenses...)
	return nil
}

// Replace overwrites the expense sharing e's id, keeping its position.
func (m *Memory) Replace(e model.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	i := m.indexOf(e.ID)
	if i < 0 {
		return ErrNotFound
	}
	m.expenses[i] = e
	return nil
}

// Delete removes the expense with id.
func (m *Memory) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	i := m.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	m.expenses = append(m.expenses[:i:i], m.expenses[i+1:]...)
	return nil
}

// Close drops the contents.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expenses = nil
	m.closed = true
	return nil
}

func (m *Memory) indexOf(id string) int {
	for i, e := range m.expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}
