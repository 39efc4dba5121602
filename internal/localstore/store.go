// Package localstore is a single-file JSON store for extraction logs, used
// when the service runs without a database. The whole list lives under one
// key and is rewritten on every mutation, so it suits personal-scale data
// only.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/brewlog-app/brewlog/internal/models"
)

const extractionsKey = "coffeeExtractions"

var ErrNotFound = errors.New("extraction not found")

// Store keeps the extraction list in memory and mirrors every change to the
// backing file.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string][]models.CoffeeExtraction
}

// Open loads the file at path, creating an empty store if it does not exist.
// A file that exists but fails to parse is an error rather than silently
// starting over.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: map[string][]models.CoffeeExtraction{},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("failed to parse store file: %w", err)
		}
	}
	return s, nil
}

// List returns extractions newest-first by date.
func (s *Store) List() []models.CoffeeExtraction {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CoffeeExtraction, len(s.data[extractionsKey]))
	copy(items, s.data[extractionsKey])
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})
	return items
}

func (s *Store) Get(id string) (*models.CoffeeExtraction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.data[extractionsKey] {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// Add assigns an ID if the entry has none and persists the updated list.
func (s *Store) Add(extraction models.CoffeeExtraction) (*models.CoffeeExtraction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if extraction.ID == "" {
		extraction.ID = uuid.NewString()
	}
	s.data[extractionsKey] = append(s.data[extractionsKey], extraction)
	if err := s.flush(); err != nil {
		return nil, err
	}
	return &extraction, nil
}

func (s *Store) Update(extraction models.CoffeeExtraction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.data[extractionsKey]
	for i, item := range items {
		if item.ID == extraction.ID {
			items[i] = extraction
			return s.flush()
		}
	}
	return ErrNotFound
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.data[extractionsKey]
	for i, item := range items {
		if item.ID == id {
			s.data[extractionsKey] = append(items[:i], items[i+1:]...)
			return s.flush()
		}
	}
	return ErrNotFound
}

func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}
