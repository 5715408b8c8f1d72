// Package combat resolves a character's equipped armor, weapons and race
// speed through the catalog and runs them through the rules engine to
// produce the derived combat block of the sheet.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/combat Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Service computes derived combat stats
type Service interface {
	ComputeDerivedStats(ctx context.Context, input *ComputeDerivedStatsInput) (*ComputeDerivedStatsOutput, error)
}

// ComputeDerivedStatsInput for ComputeDerivedStats. Infusions is the shared
// active infusion list; only entries owned by the character apply.
type ComputeDerivedStatsInput struct {
	Character *entities.Character
	State     *entities.SessionState
	Infusions []entities.ActiveInfusion
}

// ComputeDerivedStatsOutput is the combat block of the sheet
type ComputeDerivedStatsOutput struct {
	ArmorClass        *engine.CalculateArmorClassOutput        `json:"armorClass"`
	Initiative        *engine.CalculateInitiativeOutput        `json:"initiative"`
	PassivePerception *engine.CalculatePassivePerceptionOutput `json:"passivePerception"`
	// Spellcasting is nil for non-casters
	Spellcasting *engine.Spellcasting     `json:"spellcasting,omitempty"`
	Speed        *engine.CalculateSpeedOutput `json:"speed"`
	Attacks      []*engine.AttackLine     `json:"attacks"`
	Headline     *engine.AttackLine       `json:"headline,omitempty"`
	Conditions   *engine.ConditionEffects `json:"conditions"`
	// ActiveConditions echoes the state's conditions in display order
	ActiveConditions []entities.ConditionKind `json:"activeConditions,omitempty"`
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	Resolver catalog.Resolver
	Engine   engine.Engine
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	return vb.Build()
}

type orchestrator struct {
	resolver catalog.Resolver
	engine   engine.Engine
}

// NewOrchestrator creates a combat orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &orchestrator{resolver: cfg.Resolver, engine: cfg.Engine}, nil
}

// equippedArmor is the character's armor list split into body armor and
// shield. Armor is nil when there is no body armor or it did not resolve.
type equippedArmor struct {
	Armor      *entities.ArmorInfo
	ArmorItem  string
	HasShield  bool
	ShieldItem string
}

func (o *orchestrator) resolveArmor(ctx context.Context, c *entities.Character) equippedArmor {
	var eq equippedArmor
	for _, name := range c.Armor {
		if entities.IsShieldName(name) {
			if !eq.HasShield {
				eq.HasShield, eq.ShieldItem = true, name
			}
			continue
		}
		if eq.ArmorItem != "" {
			continue
		}
		eq.ArmorItem = name
		info, ok := o.resolver.ResolveArmor(ctx, name)
		if !ok {
			slog.Debug("Armor not found, treating as unarmored", "character", c.Name, "armor", name)
			continue
		}
		if info.IsShield {
			eq.ArmorItem = ""
			if !eq.HasShield {
				eq.HasShield, eq.ShieldItem = true, name
			}
			continue
		}
		eq.Armor = info
	}
	return eq
}

// resolveWeapons falls back to the class loadout when the character lists
// no weapons. Unresolved weapons are dropped.
func (o *orchestrator) resolveWeapons(ctx context.Context, c *entities.Character) []*entities.EquipmentRecord {
	names := c.Weapons
	if len(names) == 0 {
		names = o.engine.DefaultWeapons(c.Class)
	}
	out := make([]*entities.EquipmentRecord, 0, len(names))
	for _, name := range names {
		rec, ok := o.resolver.ResolveEquipment(ctx, name)
		if !ok {
			slog.Debug("Weapon not found", "character", c.Name, "weapon", name)
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (o *orchestrator) ComputeDerivedStats(
	ctx context.Context,
	input *ComputeDerivedStatsInput,
) (*ComputeDerivedStatsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	c := input.Character
	state := input.State
	if state == nil {
		state = entities.NewSessionState(c.GetID())
	}

	effects := o.engine.EvaluateConditions(state.Conditions)
	armor := o.resolveArmor(ctx, c)
	weapons := o.resolveWeapons(ctx, c)
	baseSpeed, speedSource := o.resolver.BaseSpeed(ctx, c.Race)

	ac, err := o.engine.CalculateArmorClass(ctx, &engine.CalculateArmorClassInput{
		Character:  c,
		Armor:      armor.Armor,
		ArmorItem:  armor.ArmorItem,
		HasShield:  armor.HasShield,
		ShieldItem: armor.ShieldItem,
		Infusions:  input.Infusions,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate armor class")
	}

	initiative, err := o.engine.CalculateInitiative(ctx, &engine.CalculateInitiativeInput{Character: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate initiative")
	}

	perception, err := o.engine.CalculatePassivePerception(ctx, &engine.CalculatePassivePerceptionInput{
		Character: c,
		Effects:   effects,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate passive perception")
	}

	spellcasting, err := o.engine.CalculateSpellcasting(ctx, &engine.CalculateSpellcastingInput{Character: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate spellcasting")
	}

	speed, err := o.engine.CalculateSpeed(ctx, &engine.CalculateSpeedInput{
		Character:    c,
		Conditions:   state.Conditions,
		BaseSpeed:    baseSpeed,
		BaseSource:   speedSource,
		WearingArmor: armor.Armor != nil,
		HasShield:    armor.HasShield,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate speed")
	}

	attacks, err := o.engine.CalculateAttacks(ctx, &engine.CalculateAttacksInput{
		Character: c,
		State:     state,
		Weapons:   weapons,
		Infusions: input.Infusions,
		Effects:   effects,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate attacks")
	}

	slog.Debug("Derived stats computed",
		"character", c.Name,
		"ac", ac.ArmorClass,
		"initiative", initiative.Initiative,
		"speed", speed.Speed,
		"attacks", len(attacks.Lines),
	)

	return &ComputeDerivedStatsOutput{
		ArmorClass:        ac,
		Initiative:        initiative,
		PassivePerception: perception,
		Spellcasting:      spellcasting.Spellcasting,
		Speed:             speed,
		Attacks:           attacks.Lines,
		Headline:          attacks.Headline,
		Conditions:        effects,
		ActiveConditions:  entities.SortConditions(state.Conditions),
	}, nil
}
