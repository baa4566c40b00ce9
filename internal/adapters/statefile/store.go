package statefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"patri/internal/domain"
	"patri/internal/ports"
	"patri/logging"
)

// Store implements ports.SessionStore on a single JSON file. Writes go
// through a temp file and rename under an advisory lock, so a crash mid-save
// leaves the previous snapshot intact.
type Store struct {
	path string
}

// Verify interface compliance at compile time
var _ ports.SessionStore = (*Store)(nil)

// NewStore creates a session store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted snapshot. A missing, unreadable, or inconsistent
// file never fails the caller: the corrected default snapshot is persisted
// and returned instead. Dialog and processing markers are dropped on load
// because the batches they point at did not survive the restart.
func (s *Store) Load() (domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.Logger.Warn("Session file unreadable, starting fresh", "path", s.path, "error", err)
		}
		return s.recover("missing or unreadable")
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logging.Logger.Warn("Session file corrupt, starting fresh", "path", s.path, "error", err)
		return s.recover("corrupt")
	}
	if !snap.State.Valid() {
		logging.Logger.Warn("Session file holds unknown state, starting fresh", "state", snap.State)
		return s.recover("unknown state")
	}
	if !snap.Consistent() {
		logging.Logger.Warn("Session file inconsistent, starting fresh",
			"state", snap.State, "case_id", snap.ActiveCaseID)
		return s.recover("inconsistent")
	}
	if snap.Dialog != nil || snap.Processing.Active || len(snap.Processing.Queue) > 0 {
		// The batch registry these refer to lives only in memory; carrying
		// the flag across a restart would hold the single-flight slot for a
		// batch nothing can complete.
		logging.Logger.Warn("Discarding in-flight batch work from previous run",
			"dialog", snap.Dialog != nil,
			"current_batch", snap.Processing.CurrentBatchID,
			"queued", len(snap.Processing.Queue))
		snap.Dialog = nil
		snap.Processing = domain.ProcessingState{}
		if err := s.Save(snap); err != nil {
			logging.Logger.Error("Failed to persist corrected session",
				"reason", "stale in-flight work", "error", err)
		}
	}
	return snap, nil
}

// recover persists and returns the default snapshot. The write is best
// effort; an unwritable directory surfaces on the next Save instead.
func (s *Store) recover(reason string) (domain.Snapshot, error) {
	snap := domain.DefaultSnapshot()
	if err := s.Save(snap); err != nil {
		logging.Logger.Error("Failed to persist corrected session", "reason", reason, "error", err)
	}
	return snap, nil
}

// Save writes the snapshot atomically: marshal, write to a temp file in the
// same directory, fsync, then rename over the target.
func (s *Store) Save(snap domain.Snapshot) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	unlock, err := lockFile(s.path + ".lock")
	if err != nil {
		return fmt.Errorf("failed to lock session file: %w", err)
	}
	defer unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close session file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to chmod session file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}
