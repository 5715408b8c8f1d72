//go:build integration
// +build integration

package external_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/external"
)

func TestGetRace_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client, err := external.New(&external.Config{})
	require.NoError(t, err)

	ctx := context.Background()

	testCases := []struct {
		index     string
		wantName  string
		wantSpeed int
	}{
		{index: "dragonborn", wantName: "Dragonborn", wantSpeed: 30},
		{index: "half-elf", wantName: "Half-Elf", wantSpeed: 30},
		{index: "dwarf", wantName: "Dwarf", wantSpeed: 25},
	}

	for _, tc := range testCases {
		t.Run(tc.index, func(t *testing.T) {
			race, err := client.GetRace(ctx, tc.index)
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, race.Name)
			assert.Equal(t, tc.wantSpeed, race.Speed)
			assert.NotEmpty(t, race.Traits)
		})
	}
}

func TestGetClass_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client, err := external.New(&external.Config{})
	require.NoError(t, err)

	class, err := client.GetClass(context.Background(), "monk", 2)
	require.NoError(t, err)
	assert.Equal(t, "Monk", class.Name)

	var names []string
	for _, f := range class.Levels {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "Martial Arts")
}

func TestListClassSpells_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client, err := external.New(&external.Config{})
	require.NoError(t, err)

	spells, err := client.ListClassSpells(context.Background(), "paladin", 1)
	require.NoError(t, err)
	require.NotEmpty(t, spells)
	for _, s := range spells {
		assert.LessOrEqual(t, s.Level, 1)
	}
}
