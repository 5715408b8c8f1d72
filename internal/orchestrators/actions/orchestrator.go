// Package actions builds the actions page: the universal Basic Rules
// actions, class/subclass/race actions from the catalog, and prepared or
// known spells that take a bonus action.
package actions

//go:generate mockgen -destination=mock/mock_service.go -package=actionsmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/actions Service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// ConditionRaging gates actions that are only available while raging.
const ConditionRaging = "isRaging"

// Service aggregates the actions a character can take
type Service interface {
	AggregateActions(ctx context.Context, input *AggregateActionsInput) (*AggregateActionsOutput, error)
}

// AggregateActionsInput for AggregateActions
type AggregateActionsInput struct {
	Character *entities.Character
	State     *entities.SessionState
}

// AggregateActionsOutput buckets actions by the part of a turn they use
type AggregateActionsOutput struct {
	Move     []entities.Action `json:"move"`
	Action   []entities.Action `json:"action"`
	Bonus    []entities.Action `json:"bonus"`
	Reaction []entities.Action `json:"reaction"`
}

// Config holds the dependencies for the actions orchestrator
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

// NewOrchestrator creates an actions orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &orchestrator{resolver: cfg.Resolver, engine: cfg.Engine}, nil
}

func (o *orchestrator) AggregateActions(
	ctx context.Context,
	input *AggregateActionsInput,
) (*AggregateActionsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	c := input.Character
	state := input.State
	if state == nil {
		state = entities.NewSessionState(c.GetID())
	}

	out := &AggregateActionsOutput{
		Move:     movementActions(c),
		Action:   universalActions(),
		Bonus:    universalBonusActions(),
		Reaction: universalReactions(),
	}

	var specials []entities.Action
	for _, a := range o.dataDrivenActions(ctx, c) {
		if !conditionMet(a.Condition, state) {
			continue
		}
		if a.Name == "Rage" && a.Type == entities.ActionTypeBonus && state.Actions.IsRaging {
			a.Desc = RagingDescription(c.Level)
		}
		a.Desc = engine.Template(a.Desc, o.engine.TemplateValues(c, a.Name))

		switch a.Type {
		case entities.ActionTypeMove:
			out.Move = append(out.Move, a)
		case entities.ActionTypeAction:
			out.Action = append(out.Action, a)
		case entities.ActionTypeBonus:
			out.Bonus = append(out.Bonus, a)
		case entities.ActionTypeReaction:
			out.Reaction = append(out.Reaction, a)
		case entities.ActionTypeSpecial:
			specials = append(specials, a)
		}
	}

	out.Bonus = append(out.Bonus, o.bonusActionSpells(ctx, c, state)...)

	for i := range out.Action {
		if out.Action[i].Name != attackAction {
			continue
		}
		for _, sp := range specials {
			out.Action[i].Desc += "\n\n" + sp.Name + ": " + sp.Desc
		}
		break
	}

	slog.Debug("Actions aggregated",
		"character", c.Name,
		"actions", len(out.Action),
		"bonus", len(out.Bonus),
		"reactions", len(out.Reaction),
	)

	return out, nil
}

// conditionMet evaluates an action's gate. Unknown gates fail closed.
func conditionMet(condition string, state *entities.SessionState) bool {
	switch condition {
	case "":
		return true
	case ConditionRaging:
		return state.Actions.IsRaging
	}
	return false
}

// RagingDescription replaces the Rage action text while a rage is active.
func RagingDescription(level int) string {
	benefits := fmt.Sprintf("• Advantage on Strength checks and saving throws.\n"+
		"• +%d bonus to damage rolls with Strength-based melee attacks.\n"+
		"• Resistance to bludgeoning, piercing, and slashing damage.", rules.RageDamageBonus(level))
	if level >= 6 {
		benefits += "\n• Fanatical Focus: If you fail a saving throw, you can reroll it (once per rage)."
	}
	return "You are currently raging. You gain the following benefits:\n\n" + benefits +
		"\n\nYou can end your rage as a bonus action."
}

// dataDrivenActions collects class, subclass and race actions in that
// order, dropping those above the character's level.
func (o *orchestrator) dataDrivenActions(ctx context.Context, c *entities.Character) []entities.Action {
	type source struct {
		label   string
		records []entities.ActionRecord
	}
	var sources []source

	if class, ok := o.resolver.ResolveClass(ctx, c.Class, c.Level); ok {
		sources = append(sources, source{class.Name, class.Actions})
	}
	if c.Build != "" {
		if sub, ok := o.resolver.ResolveSubclass(ctx, c.Build, c.Class); ok {
			sources = append(sources, source{sub.Name, sub.Actions})
		}
	}
	if race, ok := o.resolver.ResolveRace(ctx, c.Race); ok {
		sources = append(sources, source{race.Display, race.Actions})
	}

	var out []entities.Action
	for _, src := range sources {
		for _, rec := range src.records {
			if rec.Level > c.Level {
				continue
			}
			a, ok := entities.ActionFromRecord(rec, src.label)
			if !ok {
				slog.Warn("Skipping action with unknown type", "action", rec.Name, "type", rec.Type, "source", src.label)
				continue
			}
			out = append(out, a)
		}
	}
	return out
}

// bonusActionSpells lists prepared (prepared casters) or known (known
// casters) spells whose casting time is exactly one bonus action.
func (o *orchestrator) bonusActionSpells(
	ctx context.Context,
	c *entities.Character,
	state *entities.SessionState,
) []entities.Action {
	var candidates []string
	switch {
	case rules.IsPreparedCaster(c.Class):
		levels := make([]int, 0, len(state.Spells.PreparedByLevel))
		for lvl := range state.Spells.PreparedByLevel {
			levels = append(levels, lvl)
		}
		sort.Ints(levels)
		for _, lvl := range levels {
			candidates = append(candidates, state.Spells.PreparedByLevel[lvl]...)
		}
	case rules.IsKnownCaster(c.Class):
		candidates = c.Spells
	default:
		return nil
	}

	seen := make(map[string]bool)
	var out []entities.Action
	for _, name := range candidates {
		key := entities.Fold(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		spell, ok := o.resolver.ResolveSpell(ctx, name)
		if !ok || !spell.IsBonusAction() {
			continue
		}
		out = append(out, entities.Action{
			Name:   spell.Name,
			Desc:   strings.TrimSpace(spell.Desc.String()),
			Source: fmt.Sprintf("Spell (Lvl %d)", spell.Level),
			Type:   entities.ActionTypeBonus,
		})
	}
	return out
}
