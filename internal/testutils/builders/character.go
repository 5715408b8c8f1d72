// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// CharacterBuilder provides a fluent interface for building test characters
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder starts from a level 1 human fighter with every score at 10
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: &entities.Character{
			Name:      "Test Character",
			Class:     "Fighter",
			Race:      "Human",
			Level:     1,
			Abilities: entities.AbilityScores{},
		},
	}
}

// WithName sets the character name, which also drives GetID
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithClass sets the class and, when given, the subclass
func (b *CharacterBuilder) WithClass(class, build string) *CharacterBuilder {
	b.character.Class = class
	b.character.Build = build
	return b
}

// WithRace sets the race
func (b *CharacterBuilder) WithRace(race string) *CharacterBuilder {
	b.character.Race = race
	return b
}

// WithLevel sets the level, clamped to 1..20
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = rules.Clamp(level, 1, 20)
	return b
}

// WithAbility sets one ability score
func (b *CharacterBuilder) WithAbility(a rules.Ability, score int) *CharacterBuilder {
	b.character.Abilities[a] = score
	return b
}

// WithWeapons replaces the weapon list
func (b *CharacterBuilder) WithWeapons(names ...string) *CharacterBuilder {
	b.character.Weapons = names
	return b
}

// WithArmor replaces the worn armor list
func (b *CharacterBuilder) WithArmor(names ...string) *CharacterBuilder {
	b.character.Armor = names
	return b
}

// WithGear appends one carried item
func (b *CharacterBuilder) WithGear(name string, qty int) *CharacterBuilder {
	b.character.Gear = append(b.character.Gear, entities.GearItem{Name: name, Qty: qty})
	return b
}

// WithSpells replaces the spell list
func (b *CharacterBuilder) WithSpells(names ...string) *CharacterBuilder {
	b.character.Spells = names
	return b
}

// WithMaxHP sets the hit point maximum
func (b *CharacterBuilder) WithMaxHP(hp int) *CharacterBuilder {
	b.character.MaxHP = hp
	return b
}

// WithInfusions sets the known infusions and limits
func (b *CharacterBuilder) WithInfusions(knownLimit, activeLimit int, known ...string) *CharacterBuilder {
	b.character.Infusions = entities.InfusionSettings{
		Known:       known,
		KnownLimit:  knownLimit,
		ActiveLimit: activeLimit,
	}
	return b
}

// Build returns the character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character
}
