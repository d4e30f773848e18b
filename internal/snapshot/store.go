// ABOUTME: Badger-backed durable key-value store for session snapshots.
// ABOUTME: One JSON blob per in-progress workout, keyed workout_session_<id>.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/harperreed/ironlog/internal/models"
)

const keyPrefix = "workout_session_"

// ErrNotFound is returned when no usable snapshot exists for a workout.
// A corrupt snapshot is reported the same way: it is discarded, not surfaced.
var ErrNotFound = errors.New("snapshot not found")

// Store holds session snapshots in a local badger database.
type Store struct {
	db *badger.DB
}

// Open opens or creates the snapshot store in the given directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	return &Store{db: db}, nil
}

// DefaultDir returns the default snapshot directory under the data dir.
func DefaultDir(dataDir string) string {
	return filepath.Join(dataDir, "sessions")
}

// Save writes a snapshot, replacing any previous one for the same workout.
func (s *Store) Save(snap *models.SessionSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(snap.WorkoutID), data)
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load retrieves the snapshot for a workout. A missing key returns
// ErrNotFound; a blob that fails to decode is deleted and also reported as
// ErrNotFound, so callers always either resume cleanly or start fresh.
func (s *Store) Load(workoutID uuid.UUID) (*models.SessionSnapshot, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(workoutID))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap models.SessionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		_ = s.Clear(workoutID)
		return nil, ErrNotFound
	}
	return &snap, nil
}

// ActiveSessions lists the workout IDs that have a live snapshot. Keys
// that do not parse as workout IDs are skipped.
func (s *Store) ActiveSessions() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			k := string(it.Item().Key())
			id, err := uuid.Parse(k[len(keyPrefix):])
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return ids, nil
}

// Clear removes the snapshot for a workout. Clearing a missing key is fine.
func (s *Store) Clear(workoutID uuid.UUID) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key(workoutID))
	})
	if err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying badger database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func key(workoutID uuid.UUID) []byte {
	return []byte(keyPrefix + workoutID.String())
}
