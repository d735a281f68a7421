// Package store holds the authoritative expense list behind a small
// backend interface with in-memory and in-memory SQLite implementations.
package store

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/spent/internal/model"
)

var (
	ErrNotFound    = errors.New("expense not found")
	ErrDuplicateID = errors.New("duplicate expense id")
	ErrClosed      = errors.New("store closed")
)

// Backend names accepted by OpenBackend.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendMemory, BackendSQLite}

// Backend keeps expenses in display order, most recently added first.
type Backend interface {
	List() ([]model.Expense, error)
	Insert(e model.Expense) error
	Replace(e model.Expense) error
	Delete(id string) error
	Close() error
}

// OpenBackend opens a fresh, empty backend by name.
func OpenBackend(name string) (Backend, error) {
	switch name {
	case "", BackendMemory:
		return NewMemory(), nil
	case BackendSQLite:
		return OpenSQLite()
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", name, BackendMemory, BackendSQLite)
	}
}
