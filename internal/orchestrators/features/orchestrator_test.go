package features_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	catalogmock "github.com/KirkDiggler/rpg-sheet/internal/catalog/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/features"
)

type FeaturesTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockResolver *catalogmock.MockResolver
	orchestrator features.Service
	ctx          context.Context
}

func TestFeaturesSuite(t *testing.T) {
	suite.Run(t, new(FeaturesTestSuite))
}

func (s *FeaturesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockResolver = catalogmock.NewMockResolver(s.ctrl)
	s.ctx = context.Background()

	o, err := features.NewOrchestrator(&features.Config{Resolver: s.mockResolver})
	s.Require().NoError(err)
	s.orchestrator = o
}

func (s *FeaturesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FeaturesTestSuite) fighter() *entities.Character {
	return &entities.Character{
		Name:       "Brakka",
		Class:      "Fighter",
		Build:      "Champion",
		Race:       "Human",
		Background: "Acolyte",
		Level:      3,
		Feats:      []string{"Alert"},
	}
}

func (s *FeaturesTestSuite) TestConfigRequiresResolver() {
	_, err := features.NewOrchestrator(&features.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *FeaturesTestSuite) TestAggregateFeaturesOrdersSources() {
	c := s.fighter()

	s.mockResolver.EXPECT().ResolveRace(gomock.Any(), "Human").Return(&catalog.ResolvedRace{
		RaceRecord: &entities.RaceRecord{
			Name:   "Human",
			Remote: true,
			Traits: []entities.NamedText{{Name: "Ability Score Increase", Desc: "+1 to all."}, {Name: "Common Language"}},
		},
		Display: "Human",
	}, true)
	s.mockResolver.EXPECT().ResolveClass(gomock.Any(), "Fighter", 3).Return(&entities.ClassRecord{
		Name: "Fighter",
		Levels: entities.LeveledFeatures{
			{Level: 1, Name: "Fighting Style", Desc: "Pick a style."},
			{Level: 1, Name: "Second Wind"},
			{Level: 1, Name: "Light Armor Proficiency"},
			{Level: 2, Name: "Action Surge"},
			{Level: 3, Name: "Martial Archetype"},
			{Level: 4, Name: "Ability Score Improvement"},
		},
	}, true)
	s.mockResolver.EXPECT().ResolveSubclass(gomock.Any(), "Champion", "Fighter").Return(&entities.SubclassRecord{
		Name:  "Champion",
		Class: "Fighter",
		Features: entities.LeveledFeatures{
			{Level: 3, Name: "Improved Critical"},
			{Level: 7, Name: "Remarkable Athlete"},
		},
	}, true)
	s.mockResolver.EXPECT().ResolveFeat(gomock.Any(), "Alert").Return(&entities.FeatRecord{
		Name: "Alert",
		Desc: "+5 to initiative.",
	}, true)
	s.mockResolver.EXPECT().ResolveBackground(gomock.Any(), "Acolyte").Return(&entities.BackgroundRecord{
		Name:     "Acolyte",
		Source:   "PHB",
		Features: []entities.NamedText{{Name: "Shelter of the Faithful"}},
	}, true)

	out, err := s.orchestrator.AggregateFeatures(s.ctx, &features.AggregateFeaturesInput{Character: c})
	s.Require().NoError(err)

	s.Equal([]entities.Feature{
		{Name: "Ability Score Increase", Desc: "+1 to all.", Source: "Race"},
		{Name: "Fighting Style", Desc: "Pick a style.", Source: "Class 1 (Local)"},
		{Name: "Second Wind", Source: "Class 1 (Local)"},
		{Name: "Action Surge", Source: "Class 2 (Local)"},
		{Name: "Martial Archetype", Source: "Class 3 (Local)"},
		{Name: "Improved Critical", Source: "Subclass 3 (Local)"},
		{Name: "Alert", Desc: "+5 to initiative.", Source: "Feat"},
		{Name: "Shelter of the Faithful", Source: "Background (PHB)"},
	}, out.Features)
}

func (s *FeaturesTestSuite) TestAggregateFeaturesSurvivesMissingSources() {
	c := s.fighter()
	c.Race = "Moon Elf"
	c.Feats = nil
	c.Background = ""

	s.mockResolver.EXPECT().ResolveRace(gomock.Any(), "Moon Elf").Return(&catalog.ResolvedRace{
		RaceRecord: &entities.RaceRecord{Name: "Elf", Remote: true, Traits: []entities.NamedText{{Name: "Darkvision"}}},
		Subrace:    &entities.Reference{Index: "high-elf", Name: "High Elf"},
		Display:    "Moon Elf",
	}, true)
	s.mockResolver.EXPECT().ResolveClass(gomock.Any(), "Fighter", 3).Return(nil, false)
	s.mockResolver.EXPECT().ResolveSubclass(gomock.Any(), "Champion", "Fighter").Return(nil, false)

	out, err := s.orchestrator.AggregateFeatures(s.ctx, &features.AggregateFeaturesInput{Character: c})
	s.Require().NoError(err)
	s.Require().Len(out.Features, 2)
	s.Equal("Darkvision", out.Features[0].Name)
	s.Equal("High Elf", out.Features[1].Name)
	s.Equal("Subrace", out.Features[1].Source)
}

func (s *FeaturesTestSuite) TestAggregateFeaturesRequiresCharacter() {
	_, err := s.orchestrator.AggregateFeatures(s.ctx, &features.AggregateFeaturesInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *FeaturesTestSuite) TestMerge() {
	testCases := []struct {
		name  string
		input []entities.Feature
		want  []string
	}{
		{
			name: "qualified name suppresses the generic one",
			input: []entities.Feature{
				{Name: "Fighting Style", Source: "Class 1 (Local)"},
				{Name: "Fighting Style: Archery", Source: "Class 1 (Local)"},
			},
			want: []string{"Fighting Style: Archery"},
		},
		{
			name: "same name from two sources appears once",
			input: []entities.Feature{
				{Name: "Darkvision", Source: "Race"},
				{Name: "darkvision", Source: "Subrace"},
			},
			want: []string{"Darkvision"},
		},
		{
			name: "noise is dropped",
			input: []entities.Feature{
				{Name: ""},
				{Name: "Skill Proficiency"},
				{Name: "Elvish Language"},
				{Name: "Spellcasting: Wizard"},
				{Name: "Arcane Recovery"},
			},
			want: []string{"Arcane Recovery"},
		},
		{
			name: "generic names sharing a base prefix are suppressed",
			input: []entities.Feature{
				{Name: "Divine Domain", Source: "Class 1"},
				{Name: "Channel Divinity (1/rest)", Source: "Class 2"},
				{Name: "Channel Divinity: Turn Undead", Source: "Class 2"},
			},
			want: []string{"Divine Domain", "Channel Divinity: Turn Undead"},
		},
		{
			name: "padded names are trimmed before matching",
			input: []entities.Feature{
				{Name: "Fighting Style", Source: "Class 1"},
				{Name: " Fighting Style ", Source: "Class 1"},
				{Name: "Rage", Source: "Class 1"},
				{Name: "Rage ", Source: "Subclass 3"},
				{Name: "Fighting Style: Archery", Source: "Class 1"},
			},
			want: []string{"Rage", "Fighting Style: Archery"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got := features.Merge(tc.input)
			names := make([]string, 0, len(got))
			for _, f := range got {
				names = append(names, f.Name)
			}
			s.Equal(tc.want, names)
		})
	}
}
