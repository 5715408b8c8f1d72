package testutils

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Psalm"

// CreateTestCleric returns a level 5 Life Domain cleric
func CreateTestCleric() *entities.Character {
	return builders.NewCharacterBuilder().
		WithName(TestCharacterName).
		WithClass("Cleric", "Life Domain").
		WithRace("Dragonborn").
		WithLevel(5).
		WithAbility(rules.Strength, 14).
		WithAbility(rules.Constitution, 14).
		WithAbility(rules.Wisdom, 16).
		WithArmor("Chain Mail", "Shield").
		WithWeapons("Mace").
		WithMaxHP(38).
		Build()
}

// CreateTestArtificer returns an artificer of the given level who knows the
// common +1 infusions
func CreateTestArtificer(level int) *entities.Character {
	return builders.NewCharacterBuilder().
		WithName("Tink").
		WithClass("Artificer", "Armorer").
		WithRace("Rock Gnome").
		WithLevel(level).
		WithAbility(rules.Intelligence, 18).
		WithWeapons("Warhammer").
		WithArmor("Half Plate").
		WithInfusions(6, 3, "Enhanced Defense", "Enhanced Weapon", "Returning Weapon").
		Build()
}

// CreateTestBarbarian returns a barbarian of the given level
func CreateTestBarbarian(level int) *entities.Character {
	return builders.NewCharacterBuilder().
		WithName("Brakka").
		WithClass("Barbarian", "").
		WithRace("Half-Orc").
		WithLevel(level).
		WithAbility(rules.Strength, 16).
		WithAbility(rules.Constitution, 16).
		WithWeapons("Greataxe").
		WithMaxHP(12 + (level-1)*7).
		Build()
}
