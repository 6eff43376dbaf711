package configflow

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

const storeVersion = 1

// Entry is a configured spa. Entries are created by the login flow and not modified afterwards.
type Entry struct {
	ID    string `yaml:"entry_id"`
	Title string `yaml:"title"`
	Data  Data   `yaml:"data"`
}

// Data holds what's needed to talk to the spa.
type Data struct {
	API  string `yaml:"api"`
	DID  string `yaml:"did"`
	Name string `yaml:"name"`
}

type storeFile struct {
	Version int     `yaml:"version"`
	Entries []Entry `yaml:"entries"`
}

// Store persists entries in a YAML file.
type Store struct {
	Path string
	lock sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Entries returns all stored entries. A missing file holds no entries.
func (s *Store) Entries() ([]Entry, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	f, err := s.load()
	return f.Entries, err
}

// Add stores the entry, replacing any entry with the same ID.
func (s *Store) Add(entry Entry) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	f, err := s.load()
	if err != nil {
		return err
	}
	f.Entries = slices.DeleteFunc(f.Entries, func(e Entry) bool { return e.ID == entry.ID })
	f.Entries = append(f.Entries, entry)
	return s.save(f)
}

// Remove deletes the entry with the provided ID. It returns false if no such entry exists.
func (s *Store) Remove(id string) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	f, err := s.load()
	if err != nil {
		return false, err
	}
	count := len(f.Entries)
	f.Entries = slices.DeleteFunc(f.Entries, func(e Entry) bool { return e.ID == id })
	if len(f.Entries) == count {
		return false, nil
	}
	return true, s.save(f)
}

func (s *Store) load() (storeFile, error) {
	f := storeFile{Version: storeVersion}
	body, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = nil
		}
		return f, err
	}
	if err = yaml.Unmarshal(body, &f); err != nil {
		return f, fmt.Errorf("%s: %w", s.Path, err)
	}
	if f.Version != storeVersion {
		return f, fmt.Errorf("%s: unsupported version %d", s.Path, f.Version)
	}
	return f, nil
}

func (s *Store) save(f storeFile) error {
	body, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.Path), ".entries-*")
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err = tmp.Write(body); err == nil {
		err = tmp.Chmod(0o600)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), s.Path)
	}
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
