package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// ConditionEffects summarizes what the active conditions do to rolls.
// Disadvantage and auto-fail entries name the condition that caused them.
type ConditionEffects struct {
	AttackDisadvantage       string                   `json:"attackDisadvantage,omitempty"`
	AbilityCheckDisadvantage string                   `json:"abilityCheckDisadvantage,omitempty"`
	SaveDisadvantage         map[rules.Ability]string `json:"saveDisadvantage"`
	SaveAutoFail             map[rules.Ability]string `json:"saveAutoFail"`
	PassivePerceptionPenalty int                      `json:"passivePerceptionPenalty"`
	Incapacitated            bool                     `json:"incapacitated"`
}

// CalculateArmorClassInput carries the equipped armor already resolved by
// the caller. Armor is nil when the character wears no body armor or the
// armor could not be resolved.
type CalculateArmorClassInput struct {
	Character *entities.Character
	Armor     *entities.ArmorInfo
	// ArmorItem and ShieldItem are the names as listed on the sheet; active
	// infusions are matched against them.
	ArmorItem  string
	HasShield  bool
	ShieldItem string
	Infusions  []entities.ActiveInfusion
}

// CalculateArmorClassOutput is the AC with its label and breakdown lines
type CalculateArmorClassOutput struct {
	ArmorClass int      `json:"armorClass"`
	Label      string   `json:"label"`
	Breakdown  []string `json:"breakdown"`
}

// CalculateInitiativeInput for initiative
type CalculateInitiativeInput struct {
	Character *entities.Character
}

// CalculateInitiativeOutput for initiative
type CalculateInitiativeOutput struct {
	Initiative int      `json:"initiative"`
	Breakdown  []string `json:"breakdown"`
}

// CalculatePassivePerceptionInput for passive perception. Effects may be nil.
type CalculatePassivePerceptionInput struct {
	Character *entities.Character
	Effects   *ConditionEffects
}

// CalculatePassivePerceptionOutput for passive perception
type CalculatePassivePerceptionOutput struct {
	PassivePerception int      `json:"passivePerception"`
	Breakdown         []string `json:"breakdown"`
}

// CalculateSpellcastingInput for spell save DC and spell attack
type CalculateSpellcastingInput struct {
	Character *entities.Character
}

// Spellcasting is the save DC and attack bonus for a casting class
type Spellcasting struct {
	Ability         rules.Ability `json:"ability"`
	SaveDC          int           `json:"saveDC"`
	AttackBonus     int           `json:"attackBonus"`
	SaveBreakdown   string        `json:"saveBreakdown"`
	AttackBreakdown string        `json:"attackBreakdown"`
}

// CalculateSpellcastingOutput holds nil Spellcasting for non-casters
type CalculateSpellcastingOutput struct {
	Spellcasting *Spellcasting `json:"spellcasting,omitempty"`
}

// CalculateSpeedInput carries the race base speed resolved by the caller
type CalculateSpeedInput struct {
	Character    *entities.Character
	Conditions   []entities.ConditionKind
	BaseSpeed    int
	BaseSource   string
	WearingArmor bool
	HasShield    bool
}

// CalculateSpeedOutput for walking speed
type CalculateSpeedOutput struct {
	Speed     int      `json:"speed"`
	Breakdown []string `json:"breakdown"`
}

// CalculateAttacksInput carries the equipped weapons resolved by the caller.
// Unresolved weapons are left out.
type CalculateAttacksInput struct {
	Character *entities.Character
	State     *entities.SessionState
	Weapons   []*entities.EquipmentRecord
	Infusions []entities.ActiveInfusion
	Effects   *ConditionEffects
}

// AttackLine is one row of the attacks block
type AttackLine struct {
	Name string `json:"name"`
	// ToHit is nil for save-based attacks
	ToHit   *int          `json:"toHit,omitempty"`
	Ability rules.Ability `json:"ability,omitempty"`
	// Damage is the rollable notation, e.g. "1d8+3"
	Damage  string `json:"damage"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	Tooltip string `json:"tooltip,omitempty"`
	// Disadvantage names the condition imposing disadvantage, if any
	Disadvantage string `json:"disadvantage,omitempty"`
	Raging       bool   `json:"raging,omitempty"`
}

// CalculateAttacksOutput lists special attacks first, then weapons
type CalculateAttacksOutput struct {
	Lines    []*AttackLine `json:"lines"`
	Headline *AttackLine   `json:"headline,omitempty"`
}
