package dictionary

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage)
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestLookupSucceeds() {
	s.Require().NoError(s.service.Seed(s.ctx))

	def, err := s.service.Lookup(s.ctx, "eloquent")
	s.Require().NoError(err)
	s.Equal("eloquent", def.Word)
	s.Equal("adjective", def.PartOfSpeech)
	s.Contains(def.Synonyms, "articulate")
}

func (s *ServiceSuite) TestLookupIsCaseInsensitive() {
	s.Require().NoError(s.service.Seed(s.ctx))

	def, err := s.service.Lookup(s.ctx, "  ELOQUENT ")
	s.Require().NoError(err)
	s.Equal("eloquent", def.Word)
}

func (s *ServiceSuite) TestLookupUnknownWord() {
	s.Require().NoError(s.service.Seed(s.ctx))

	_, err := s.service.Lookup(s.ctx, "zyzzyva")
	s.ErrorIs(err, model.ErrWordNotFound)
}

func (s *ServiceSuite) TestLookupEmptyWord() {
	_, err := s.service.Lookup(s.ctx, "   ")
	s.ErrorIs(err, model.ErrWordNotFound)
}

func (s *ServiceSuite) TestLoadEntriesReplacesExisting() {
	s.Require().NoError(s.service.Seed(s.ctx))

	err := s.service.LoadEntries(s.ctx, []model.Definition{{
		Word:       "eloquent",
		Definition: "updated definition",
	}})
	s.Require().NoError(err)

	def, err := s.service.Lookup(s.ctx, "eloquent")
	s.Require().NoError(err)
	s.Equal("updated definition", def.Definition)
}

func (s *ServiceSuite) TestLoadFromFile() {
	entries := []model.Definition{
		{Word: "cat", PartOfSpeech: "noun", Definition: "A small domesticated felid."},
		{Word: "dog", PartOfSpeech: "noun", Definition: "A domesticated canid."},
	}
	data, err := json.Marshal(entries)
	s.Require().NoError(err)

	path := filepath.Join(s.T().TempDir(), "words.json")
	s.Require().NoError(os.WriteFile(path, data, 0o644))

	s.Require().NoError(s.service.LoadFromFile(s.ctx, path))

	def, err := s.service.Lookup(s.ctx, "dog")
	s.Require().NoError(err)
	s.Equal("A domesticated canid.", def.Definition)
}

func (s *ServiceSuite) TestLoadFromFileMissing() {
	err := s.service.LoadFromFile(s.ctx, "/nonexistent/words.json")
	s.Error(err)
}
