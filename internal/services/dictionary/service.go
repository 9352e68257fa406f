package dictionary

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/storage"
)

// Service provides dictionary definition lookups backed by storage
type Service struct {
	storage storage.Storage
}

// New creates a new DictionaryService
func New(storage storage.Storage) *Service {
	return &Service{
		storage: storage,
	}
}

// Lookup returns the definition for a word. Lookups are
// case-insensitive; "Eloquent" and "eloquent" resolve identically.
func (s *Service) Lookup(ctx context.Context, word string) (*model.Definition, error) {
	word = strings.TrimSpace(strings.ToLower(word))
	if word == "" {
		return nil, model.ErrWordNotFound
	}
	return s.storage.GetDefinition(ctx, word)
}

// LoadEntries stores the given definitions, replacing existing entries
// for the same words
func (s *Service) LoadEntries(ctx context.Context, defs []model.Definition) error {
	return s.storage.SaveDefinitions(ctx, defs)
}

// LoadFromFile loads definitions from a JSON file holding an array of
// entries
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var defs []model.Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		return err
	}

	return s.LoadEntries(ctx, defs)
}

// Seed loads a small built-in word list so a fresh deployment has
// something to look up before real data is imported
func (s *Service) Seed(ctx context.Context) error {
	return s.LoadEntries(ctx, seedEntries)
}

// Interface for dependency injection
type ServiceInterface interface {
	Lookup(ctx context.Context, word string) (*model.Definition, error)
	LoadEntries(ctx context.Context, defs []model.Definition) error
}

var _ ServiceInterface = (*Service)(nil)
