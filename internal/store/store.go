package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/spent/internal/logging"
	"github.com/theirongolddev/spent/internal/model"
)

// Store validates submissions and applies them to a Backend.
type Store struct {
	backend Backend
	log     zerolog.Logger
	now     func() time.Time
	newID   func() string
}

// New wraps backend. clock supplies "today" for validation; nil means time.Now.
func New(backend Backend, logger zerolog.Logger, clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{
		backend: backend,
		log:     logging.Component(logger, logging.ComponentStore),
		now:     clock,
		newID:   uuid.NewString,
	}
}

// Add validates in and prepends the new expense.
func (s *Store) Add(in model.ExpenseInput) (model.Expense, error) {
	e, err := in.Build(s.newID(), s.now())
	if err != nil {
		return model.Expense{}, err
	}
	if err := s.backend.Insert(e); err != nil {
		return model.Expense{}, fmt.Errorf("adding expense: %w", err)
	}
	s.logMutation("added", e)
	return e, nil
}

// Update validates in and replaces the expense with id, keeping its position.
func (s *Store) Update(id string, in model.ExpenseInput) (model.Expense, error) {
	if _, err := s.Get(id); err != nil {
		return model.Expense{}, err
	}
	e, err := in.Build(id, s.now())
	if err != nil {
		return model.Expense{}, err
	}
	if err := s.backend.Replace(e); err != nil {
		return model.Expense{}, fmt.Errorf("updating expense %s: %w", id, err)
	}
	s.logMutation("updated", e)
	return e, nil
}

// Remove deletes the expense with id.
func (s *Store) Remove(id string) error {
	if err := s.backend.Delete(id); err != nil {
		return fmt.Errorf("removing expense %s: %w", id, err)
	}
	s.log.Info().Str(logging.FieldExpenseID, id).Msg("removed")
	return nil
}

// Import stores an already built expense as-is, used for seed data.
// The amount must be positive and the category known.
func (s *Store) Import(e model.Expense) error {
	if e.ID == "" {
		e.ID = s.newID()
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("importing expense %s: %w", e.ID, model.ErrInvalidAmount)
	}
	if !e.Category.Valid() {
		return fmt.Errorf("importing expense %s: %w", e.ID, model.ErrUnknownCategory)
	}
	if err := s.backend.Insert(e); err != nil {
		return fmt.Errorf("importing expense %s: %w", e.ID, err)
	}
	return nil
}

// Get returns the expense with id.
func (s *Store) Get(id string) (model.Expense, error) {
	all, err := s.backend.List()
	if err != nil {
		return model.Expense{}, err
	}
	for _, e := range all {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Expense{}, fmt.Errorf("expense %s: %w", id, ErrNotFound)
}

// Snapshot returns a copy of every expense in display order.
func (s *Store) Snapshot() ([]model.Expense, error) {
	return s.backend.List()
}

// counter is implemented by backends that can count without listing.
type counter interface {
	Count() (int, error)
}

// Len returns the number of stored expenses, 0 if the backend fails.
func (s *Store) Len() int {
	if c, ok := s.backend.(counter); ok {
		n, err := c.Count()
		if err != nil {
			return 0
		}
		return n
	}
	all, err := s.backend.List()
	if err != nil {
		return 0
	}
	return len(all)
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) logMutation(msg string, e model.Expense) {
	s.log.Info().
		Str(logging.FieldExpenseID, e.ID).
		Str(logging.FieldCategory, string(e.Category)).
		Str(logging.FieldAmount, e.Amount.StringFixed(2)).
		Msg(msg)
}

// IsValidation reports whether err is a rejected submission rather than a backend failure.
func IsValidation(err error) bool {
	return errors.Is(err, model.ErrEmptyTitle) ||
		errors.Is(err, model.ErrEmptyAmount) ||
		errors.Is(err, model.ErrInvalidAmount) ||
		errors.Is(err, model.ErrUnknownCategory) ||
		errors.Is(err, model.ErrInvalidDate)
}
