// Package storage provides file system operations for the pt data files.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jacksmith/pt/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	// stateFile holds bookkeeping that is not part of the snapshot format.
	stateFile = ".pt-state.yaml"
	// stateVersion is the current state file layout.
	stateVersion = 1
)

// State contains settings stored in .pt-state.yaml.
type State struct {
	Version     int `yaml:"version"`
	NextOrderID int `yaml:"next_order_id"`
}

// Storage provides access to the data files of a working directory.
type Storage struct {
	root string // directory holding the data files
	cfg  *Config
}

// Open returns a Storage for the given directory, with its configuration loaded.
func Open(dir string) (*Storage, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		return nil, err
	}

	return &Storage{root: dir, cfg: cfg}, nil
}

// Init writes an empty data file to dir.
// Returns error if the data file already exists.
func Init(dir string) (*Storage, error) {
	s, err := Open(dir)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(s.DataPath()); err == nil {
		return nil, fmt.Errorf("%s already exists in %s", filepath.Base(s.DataPath()), dir)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to check for %s: %w", s.DataPath(), err)
	}

	if err := s.Save(model.NewStore(s.cfg.Limits())); err != nil {
		return nil, err
	}
	return s, nil
}

// Root returns the working directory.
func (s *Storage) Root() string {
	return s.root
}

// Config returns the loaded configuration.
func (s *Storage) Config() *Config {
	return s.cfg
}

// DataPath returns the path to the snapshot file.
func (s *Storage) DataPath() string {
	if filepath.IsAbs(s.cfg.DataFile) {
		return s.cfg.DataFile
	}
	return filepath.Join(s.root, s.cfg.DataFile)
}

// StatePath returns the path to the state file.
func (s *Storage) StatePath() string {
	return filepath.Join(s.root, stateFile)
}

// Load reads the snapshot into a new store using the configured limits.
//
// A missing snapshot is the first-run case and yields an empty store.
// When the snapshot exists but cannot be read, an empty store is returned
// together with a *model.PersistenceError wrapping model.ErrDataUnreadable.
// Skipped lines are returned as warnings.
func (s *Storage) Load() (*model.Store, []model.ParseWarning, error) {
	limits := s.cfg.Limits()

	store, warnings, err := model.LoadFile(s.DataPath(), limits)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return model.NewStore(limits), nil, &model.PersistenceError{
				Op:   "load",
				Path: s.DataPath(),
				Err:  fmt.Errorf("%w: %w", model.ErrDataUnreadable, err),
			}
		}
		store = model.NewStore(limits)
	}

	state, err := s.loadState()
	if err != nil {
		return store, warnings, &model.PersistenceError{Op: "load", Path: s.StatePath(), Err: err}
	}
	store.SetOrderSeq(state.NextOrderID)

	return store, warnings, nil
}

// Save writes a full snapshot of store, then the order sequence.
// Any failure is returned as a *model.PersistenceError.
func (s *Storage) Save(store *model.Store) error {
	if err := model.SaveFile(s.DataPath(), store); err != nil {
		return &model.PersistenceError{Op: "save", Path: s.DataPath(), Err: err}
	}

	state := State{Version: stateVersion, NextOrderID: store.NextOrderID()}
	if err := s.saveState(state); err != nil {
		return &model.PersistenceError{Op: "save", Path: s.StatePath(), Err: err}
	}
	return nil
}

// loadState reads .pt-state.yaml. A missing file yields a zero State.
func (s *Storage) loadState() (State, error) {
	var state State

	data, err := os.ReadFile(s.StatePath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return state, nil
		}
		return state, fmt.Errorf("failed to read %s: %w", stateFile, err)
	}

	if err := yaml.Unmarshal(data, &state); err != nil {
		return state, fmt.Errorf("failed to parse %s: %w", stateFile, err)
	}
	return state, nil
}

func (s *Storage) saveState(state State) error {
	data, err := yaml.Marshal(&state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := os.WriteFile(s.StatePath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", stateFile, err)
	}
	return nil
}
