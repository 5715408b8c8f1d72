package character_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	primary   string
	secondary string
	repo      character.Repository
	ctx       context.Context
}

func TestFileRepositorySuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.primary = s.T().TempDir()
	s.secondary = s.T().TempDir()
	s.ctx = context.Background()

	s.write(s.primary, "psalm.json", `{"name": "Psalm", "class": "Cleric", "level": 5}`)
	s.write(s.primary, "classes.json", `{"name": "Cleric", "hit_die": 8}`)
	s.write(s.primary, "notes.json", `["not", "a", "character"]`)
	s.write(s.secondary, "tink.yaml", "name: Tink\nclass: Artificer\nlevel: 3\nabilities:\n  INT: 16\n")
	s.write(filepath.Join(s.secondary, "characters"), "ash.yml", "name: Ash\nclass: Monk\n")
	s.write(s.secondary, "psalm.json", `{"name": "Psalm", "class": "Druid"}`)

	repo, err := character.NewFile(&character.FileConfig{DataDirs: []string{s.primary, s.secondary}})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *FileRepositoryTestSuite) write(dir, name, body string) {
	s.Require().NoError(os.MkdirAll(dir, 0o755))
	s.Require().NoError(os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func (s *FileRepositoryTestSuite) TestConfigValidation() {
	_, err := character.NewFile(&character.FileConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *FileRepositoryTestSuite) TestGetAcceptsIDForms() {
	testCases := []struct {
		id    string
		class string
	}{
		{"psalm", "Cleric"},
		{"psalm.json", "Cleric"},
		{"data/psalm.json", "Cleric"},
		{"Psalm", "Cleric"},
		{"tink", "Artificer"},
		{"tink.yaml", "Artificer"},
		{"ash", "Monk"},
	}
	for _, tc := range testCases {
		s.Run(tc.id, func() {
			out, err := s.repo.Get(s.ctx, character.GetInput{ID: tc.id})
			s.Require().NoError(err)
			s.Equal(tc.class, out.Character.Class)
		})
	}
}

func (s *FileRepositoryTestSuite) TestFirstDirectoryWins() {
	out, err := s.repo.Get(s.ctx, character.GetInput{ID: "psalm"})
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.primary, "psalm.json"), out.Path)
}

func (s *FileRepositoryTestSuite) TestYAMLAbilitiesNormalize() {
	out, err := s.repo.Get(s.ctx, character.GetInput{ID: "tink"})
	s.Require().NoError(err)
	s.Equal(3, out.Character.Level)
	s.Equal(16, out.Character.Abilities.Score("INT"))
}

func (s *FileRepositoryTestSuite) TestGetErrors() {
	testCases := []struct {
		name  string
		id    string
		check func(error) bool
	}{
		{"missing", "nobody", errors.IsNotFound},
		{"wrong extension", "tink.json", errors.IsNotFound},
		{"empty", " ", errors.IsInvalidArgument},
		{"traversal", "../secrets", errors.IsInvalidArgument},
		{"not a character", "notes", errors.IsInternal},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Get(s.ctx, character.GetInput{ID: tc.id})
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error %v", err)
		})
	}
}

func (s *FileRepositoryTestSuite) TestListSkipsCatalogsAndDuplicates() {
	out, err := s.repo.List(s.ctx)
	s.Require().NoError(err)

	names := make([]string, 0, len(out.Characters))
	for _, c := range out.Characters {
		names = append(names, c.Name)
	}
	s.Equal([]string{"Ash", "Psalm", "Tink"}, names)
	s.Equal("Cleric", out.Characters[1].Class)
}
