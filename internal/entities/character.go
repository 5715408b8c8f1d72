// Package entities provides the canonical data structures rpg-sheet derives
// from: the normalized character record, the mutable session state, and the
// reference records loaded from rules catalogs.
package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// EntityTypeCharacter is returned by Character.GetType.
const EntityTypeCharacter = "character"

// ProficiencyLevel is how strongly a character is trained in a skill.
type ProficiencyLevel int

const (
	ProficiencyNone ProficiencyLevel = iota
	ProficiencyHalf
	ProficiencyProficient
	ProficiencyExpertise
)

// Multiplier returns the fraction of PB this level contributes.
func (p ProficiencyLevel) Multiplier() float64 {
	switch p {
	case ProficiencyHalf:
		return 0.5
	case ProficiencyProficient:
		return 1
	case ProficiencyExpertise:
		return 2
	}
	return 0
}

// AbilityScores maps each ability to its score.
type AbilityScores map[rules.Ability]int

// Score returns the score for a, or 10 when it was never set.
func (a AbilityScores) Score(ab rules.Ability) int {
	if v, ok := a[ab]; ok {
		return v
	}
	return 10
}

// Mod returns the ability modifier for ab.
func (a AbilityScores) Mod(ab rules.Ability) int {
	return rules.AbilityModifier(a.Score(ab))
}

// BestOf returns whichever of x or y has the higher modifier. Ties go to x.
func (a AbilityScores) BestOf(x, y rules.Ability) (rules.Ability, int) {
	if a.Mod(x) >= a.Mod(y) {
		return x, a.Mod(x)
	}
	return y, a.Mod(y)
}

// Coins is the coin purse.
type Coins struct {
	PP int `json:"pp"`
	GP int `json:"gp"`
	SP int `json:"sp"`
	CP int `json:"cp"`
}

// Add credits n coins of the given denomination (pp, gp, sp, cp).
func (c *Coins) Add(denomination string, n int) {
	switch strings.ToLower(denomination) {
	case "pp":
		c.PP += n
	case "gp":
		c.GP += n
	case "sp":
		c.SP += n
	case "cp":
		c.CP += n
	}
}

// GearItem is a non-weapon inventory entry.
type GearItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
	Ref  string `json:"ref,omitempty"`
	Desc string `json:"desc,omitempty"`
}

// Proficiencies lists the free-form proficiency groups.
type Proficiencies struct {
	Armor   []string `json:"armor,omitempty"`
	Weapons []string `json:"weapons,omitempty"`
	Tools   []string `json:"tools,omitempty"`
	Skills  []string `json:"skills,omitempty"`
}

// DeathSaves counts filled success and failure circles, each 0-3.
type DeathSaves struct {
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
}

// InfusionSettings carries an artificer's infusion limits.
type InfusionSettings struct {
	Known       []string `json:"known,omitempty"`
	KnownLimit  int      `json:"known_limit"`
	ActiveLimit int      `json:"active_limit"`
}

// Character is a normalized character record. It is read-only once loaded;
// everything the user edits lives in SessionState.
type Character struct {
	Name         string `json:"name"`
	Class        string `json:"class"`
	Build        string `json:"build,omitempty"`
	Race         string `json:"race"`
	RaceAncestry string `json:"race_ancestry,omitempty"`
	Background   string `json:"background,omitempty"`
	Level        int    `json:"level"`

	Abilities AbilityScores `json:"abilities"`

	Spells    []string   `json:"spells,omitempty"`
	Feats     []string   `json:"feats,omitempty"`
	Traits    []string   `json:"traits,omitempty"`
	Features  []string   `json:"features,omitempty"`
	Weapons   []string   `json:"weapons,omitempty"`
	Armor     []string   `json:"armor,omitempty"`
	Gear      []GearItem `json:"gear,omitempty"`
	Coins     Coins      `json:"coins"`
	Languages []string   `json:"languages,omitempty"`

	Proficiencies Proficiencies               `json:"proficiencies"`
	SavingThrows  []rules.Ability             `json:"saving_throws,omitempty"`
	SkillLevels   map[string]ProficiencyLevel `json:"skill_levels,omitempty"`

	MaxHP      int        `json:"max_hp"`
	CurrentHP  *int       `json:"current_hp,omitempty"`
	TempHP     int        `json:"temp_hp"`
	HitDie     string     `json:"hit_die,omitempty"`
	DeathSaves DeathSaves `json:"death_saves"`

	InitiativeBonus        *int `json:"initiative_bonus,omitempty"`
	AddChaToInitiative     bool `json:"add_cha_to_initiative,omitempty"`
	BonusPassivePerception int  `json:"bonus_passive_perception,omitempty"`
	SpellAttackBonusMod    int  `json:"spell_attack_bonus_mod,omitempty"`
	SpellSaveDCMod         int  `json:"spell_save_dc_mod,omitempty"`

	Infusions InfusionSettings `json:"infusions"`

	PlayerName string `json:"player_name,omitempty"`
	Alignment  string `json:"alignment,omitempty"`
	Gender     string `json:"gender,omitempty"`
	EyesHair   string `json:"eyes_hair,omitempty"`
}

// GetID implements core.Entity. Session state is keyed by it.
func (c *Character) GetID() string {
	return Slug(c.Name)
}

// GetType implements core.Entity
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// Validate checks the invariants NormalizeCharacter guarantees.
func (c *Character) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", c.Name, vb)
	errors.ValidateRange("level", c.Level, 1, 20, vb)
	if c.MaxHP < 0 {
		vb.InvalidField("max_hp", "must not be negative")
	}
	return vb.Build()
}

// ClassIs compares the class case-insensitively.
func (c *Character) ClassIs(class string) bool {
	return strings.EqualFold(strings.TrimSpace(c.Class), class)
}

// BuildContains reports whether the subclass name contains s, ignoring case.
func (c *Character) BuildContains(s string) bool {
	return strings.Contains(strings.ToLower(c.Build), strings.ToLower(s))
}

// RaceContains reports whether the race name contains s, ignoring case.
func (c *Character) RaceContains(s string) bool {
	return strings.Contains(strings.ToLower(c.Race), strings.ToLower(s))
}

// ProficiencyBonus is shorthand for rules.ProficiencyBonus(c.Level).
func (c *Character) ProficiencyBonus() int {
	return rules.ProficiencyBonus(c.Level)
}

// HasFeat reports whether the character has a feat with exactly this name.
func (c *Character) HasFeat(name string) bool {
	return containsFold(c.Feats, name)
}

// HasTraitContaining reports whether any trait name contains s.
func (c *Character) HasTraitContaining(s string) bool {
	s = strings.ToLower(s)
	for _, t := range c.Traits {
		if strings.Contains(strings.ToLower(t), s) {
			return true
		}
	}
	return false
}

// HasNamed reports whether any feature, feat or trait name contains name,
// ignoring case.
func (c *Character) HasNamed(name string) bool {
	needle := strings.ToLower(name)
	for _, pool := range [][]string{c.Features, c.Feats, c.Traits} {
		for _, n := range pool {
			if strings.Contains(strings.ToLower(n), needle) {
				return true
			}
		}
	}
	return false
}

// SkillLevel resolves a skill's proficiency from the skill map, falling back
// to the flat proficiency lists.
func (c *Character) SkillLevel(skill string) ProficiencyLevel {
	for k, v := range c.SkillLevels {
		if strings.EqualFold(k, skill) && v != ProficiencyNone {
			return v
		}
	}
	if containsFold(c.Proficiencies.Skills, skill) {
		return ProficiencyProficient
	}
	return ProficiencyNone
}

// StartingHP returns the current HP recorded on the sheet, defaulting to max.
func (c *Character) StartingHP() int {
	if c.CurrentHP != nil {
		return *c.CurrentHP
	}
	return c.MaxHP
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(strings.TrimSpace(s), v) {
			return true
		}
	}
	return false
}
