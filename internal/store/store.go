// Package store owns the canonical Position collection and its persistence
// boundary. The whole collection is written as one blob on every mutation
// and read once at startup.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/kingrea/hirekit/internal/position"
	"github.com/kingrea/hirekit/internal/storage"
)

// DefaultKey is the slot key the collection is stored under.
const DefaultKey = "hiring-oracle-data"

var (
	// ErrNotReady is returned by mutations issued before Load.
	ErrNotReady = errors.New("store: not loaded")
	// ErrNotFound is returned by Get for unknown ids.
	ErrNotFound = errors.New("store: position not found")
)

// CorruptDataError describes a stored collection that was discarded at load.
type CorruptDataError struct {
	Key       string
	BackupKey string
	Err       error
}

func (e *CorruptDataError) Error() string {
	msg := fmt.Sprintf("store: discarded unreadable data under %q: %v", e.Key, e.Err)
	if e.BackupKey != "" {
		msg += fmt.Sprintf(" (raw copy kept under %q)", e.BackupKey)
	}
	return msg
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

// Journal receives user-facing activity entries.
type Journal interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
}

// Store holds the Position collection in memory and mirrors it to a slot.
type Store struct {
	slot    storage.Slot
	key     string
	now     func() time.Time
	newID   func() string
	log     log.FieldLogger
	journal Journal

	mu        sync.Mutex
	positions []position.Position
	ready     bool
	loadIssue *CorruptDataError
}

// Option customizes a Store during construction.
type Option func(*Store)

// WithClock overrides the clock used for timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides how fresh ids are minted.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithKey stores the collection under a different slot key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger routes diagnostics to logger.
func WithLogger(logger log.FieldLogger) Option {
	return func(s *Store) {
		if logger != nil {
			s.log = logger
		}
	}
}

// WithJournal records saves, deletes and load problems in journal.
func WithJournal(journal Journal) Option {
	return func(s *Store) {
		s.journal = journal
	}
}

// New builds a store over slot. Call Load before mutating it.
func New(slot storage.Slot, opts ...Option) *Store {
	discard := log.New()
	discard.SetOutput(io.Discard)
	s := &Store{
		slot:  slot,
		key:   DefaultKey,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
		log:   discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the slot key in use.
func (s *Store) Key() string { return s.key }

// Load reads the persisted collection. Absent data starts an empty
// collection. Unreadable data is discarded: the store starts empty, keeps a
// raw copy under a backup key and reports the problem through LoadIssue
// rather than an error. Only a failing slot read is returned, and in that
// case the store stays unloaded so nothing can overwrite the data. Once
// loaded, further calls do nothing.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}
	data, err := s.slot.Get(ctx, s.key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.positions = []position.Position{}
	case err != nil:
		return fmt.Errorf("store: load %s: %w", s.key, err)
	default:
		positions, decodeErr := position.Decode(data)
		if decodeErr != nil {
			s.positions = []position.Position{}
			s.loadIssue = s.quarantine(ctx, data, decodeErr)
		} else {
			s.positions = positions
		}
	}
	s.ready = true
	s.log.WithField("count", len(s.positions)).Info("positions loaded")
	return nil
}

func (s *Store) quarantine(ctx context.Context, data []byte, cause error) *CorruptDataError {
	issue := &CorruptDataError{Key: s.key, Err: cause}
	backup := fmt.Sprintf("%s.corrupt-%d", s.key, s.now().Unix())
	if err := s.slot.Set(ctx, backup, data); err != nil {
		s.log.WithError(err).WithField("key", backup).Error("could not keep a copy of unreadable data")
	} else {
		issue.BackupKey = backup
	}
	s.log.WithError(cause).WithField("key", s.key).Warn("stored positions discarded")
	if s.journal != nil {
		s.journal.Warn("Stored positions could not be read and were discarded: %v", cause)
	}
	return issue
}

// Ready reports whether Load has completed.
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// LoadIssue returns why stored data was discarded during Load, or nil.
func (s *Store) LoadIssue() *CorruptDataError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadIssue
}

// Len returns the number of positions held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.positions)
}

// All returns every position in collection order.
func (s *Store) All() []position.Position {
	return s.List("")
}

// List returns positions whose title contains query, ignoring case, in
// collection order. A blank query returns everything.
func (s *Store) List(query string) []position.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]position.Position, 0, len(s.positions))
	for _, p := range s.positions {
		if p.MatchesTitle(query) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Find looks a position up by id.
func (s *Store) Find(id string) (position.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.positions[idx].Clone(), true
	}
	return position.Position{}, false
}

// Get is Find with an error for unknown ids.
func (s *Store) Get(id string) (position.Position, error) {
	p, ok := s.Find(id)
	if !ok {
		return position.Position{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p, nil
}

// Create returns a blank position with a fresh id and timestamps. It is not
// part of the collection until saved.
func (s *Store) Create() position.Position {
	return position.Blank(s.newID(), s.now())
}

// CreateFromTemplate is Create seeded from a template.
func (s *Store) CreateFromTemplate(tmpl position.Template) position.Position {
	return tmpl.Instantiate(s.newID(), s.now())
}

// Save stamps updatedAt and writes p into the collection, replacing the
// record with the same id or appending a new one, then persists the whole
// collection. The in-memory collection keeps the change even when
// persisting fails; the error is returned.
func (s *Store) Save(ctx context.Context, p position.Position) (position.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return position.Position{}, ErrNotReady
	}
	saved := p.Clone()
	if saved.ID == "" {
		saved.ID = s.newID()
	}
	now := position.Stamp(s.now())
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = now
	}
	if now.Before(saved.CreatedAt) {
		now = saved.CreatedAt
	}
	saved.UpdatedAt = now

	if idx := s.indexOf(saved.ID); idx >= 0 {
		s.positions[idx] = saved
	} else {
		s.positions = append(s.positions, saved)
	}
	fields := log.Fields{"id": saved.ID, "title": saved.Title}
	if err := s.persist(ctx); err != nil {
		s.log.WithError(err).WithFields(fields).Error("position save not persisted")
		return saved.Clone(), err
	}
	s.log.WithFields(fields).Info("position saved")
	if s.journal != nil {
		s.journal.Info("Saved position %q", saved.DisplayTitle())
	}
	return saved.Clone(), nil
}

// Delete removes the position with id. Unknown ids are a no-op and report
// false.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return false, ErrNotReady
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	removed := s.positions[idx]
	kept := make([]position.Position, 0, len(s.positions)-1)
	kept = append(kept, s.positions[:idx]...)
	s.positions = append(kept, s.positions[idx+1:]...)
	if err := s.persist(ctx); err != nil {
		s.log.WithError(err).WithField("id", id).Error("position delete not persisted")
		return true, err
	}
	s.log.WithField("id", id).Info("position deleted")
	if s.journal != nil {
		s.journal.Info("Deleted position %q", removed.DisplayTitle())
	}
	return true, nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.positions {
		if s.positions[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context) error {
	data, err := position.Encode(s.positions)
	if err != nil {
		return err
	}
	if err := s.slot.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("store: persist: %w", err)
	}
	return nil
}
