package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx     context.Context
	primary string
	second  string
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.primary = s.T().TempDir()
	s.second = s.T().TempDir()
}

func (s *StoreTestSuite) write(dir, file, content string) {
	s.Require().NoError(os.WriteFile(filepath.Join(dir, file), []byte(content), 0o600))
}

func (s *StoreTestSuite) newStore() *Store {
	store, err := NewStore(&StoreConfig{DataDirs: []string{s.primary, s.second}})
	s.Require().NoError(err)
	return store
}

func (s *StoreTestSuite) TestFirstDirectoryWins() {
	s.write(s.primary, "spells.json", `[{"index": "bless", "name": "Bless", "level": 1}]`)
	s.write(s.second, "spells.json", `[{"index": "bane", "name": "Bane", "level": 1}]`)

	spells := s.newStore().Spells(s.ctx)
	s.Equal(1, spells.Len())
	_, ok := spells.Find("bane")
	s.False(ok)
}

func (s *StoreTestSuite) TestYAMLCatalog() {
	s.write(s.second, "races.yaml", `
- name: Harengon
  speed: 30
  traits:
    - Hare-Trigger
    - name: Rabbit Hop
      desc: Jump as a bonus action.
`)

	race, ok := s.newStore().Races(s.ctx).Find("  HARENGON ")
	s.Require().True(ok)
	s.Equal(30, race.Speed)
	s.Equal("Jump as a bonus action.", race.TraitDesc(race.Traits[1]))
}

func (s *StoreTestSuite) TestDocumentShapes() {
	testCases := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "single record",
			content: `{"name": "Alert", "desc": "Always on the lookout."}`,
			want:    []string{"Alert"},
		},
		{
			name:    "wrapped list",
			content: `{"feats": [{"name": "Alert"}, {"name": "Observant"}]}`,
			want:    []string{"Alert", "Observant"},
		},
		{
			name:    "keyed by name",
			content: `{"Observant": {"desc": "Quick to notice."}, "Alert": {"desc": "Always on the lookout."}}`,
			want:    []string{"Alert", "Observant"},
		},
		{
			name:    "broken entry skipped",
			content: `[{"name": "Alert"}, {"name": ["not", "a", "string"]}]`,
			want:    []string{"Alert"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.write(s.primary, "feats.json", tc.content)

			var got []string
			for _, f := range s.newStore().Feats(s.ctx).All() {
				got = append(got, f.Name)
			}
			s.Equal(tc.want, got)
		})
	}
}

func (s *StoreTestSuite) TestMissingAndMalformedFilesAreEmpty() {
	s.write(s.primary, "conditions.json", `{not json`)

	store := s.newStore()
	s.Equal(0, store.Conditions(s.ctx).Len())
	s.Equal(0, store.Infusions(s.ctx).Len())
}

func (s *StoreTestSuite) TestFindBySlug() {
	s.write(s.primary, "spells.json", `[{"name": "Hunter's Mark", "level": 1}]`)

	spell, ok := s.newStore().Spells(s.ctx).Find("hunters-mark")
	s.Require().True(ok)
	s.Equal("Hunter's Mark", spell.Name)
}

func (s *StoreTestSuite) TestConcurrentFirstLoadReadsOnce() {
	s.write(s.primary, "classes.json", `[{"name": "Monk", "levels": [{"level": 1, "features": ["Martial Arts"]}]}]`)

	store := s.newStore()
	var reads atomic.Int32
	store.readFile = func(path string) ([]byte, error) {
		reads.Add(1)
		return os.ReadFile(path)
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Equal(1, store.Classes(s.ctx).Len())
		}()
	}
	wg.Wait()

	store.Classes(s.ctx)
	s.Equal(int32(1), reads.Load())
}

func (s *StoreTestSuite) TestCancelledLoadDoesNotEmptyTheCatalog() {
	s.write(s.primary, "spells.json", `[{"name": "Bless", "level": 1}, {"name": "Bane", "level": 1}]`)
	store := s.newStore()

	cancelled, cancel := context.WithCancel(s.ctx)
	cancel()

	s.Equal(2, store.Spells(cancelled).Len())
	s.Equal(2, store.Spells(s.ctx).Len())
}

func (s *StoreTestSuite) TestConfigValidation() {
	_, err := NewStore(&StoreConfig{})
	s.Error(err)

	_, err = NewStore(nil)
	s.Error(err)
}
