package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/sessionstate"
)

// infusionsWithBonus grant +1, or +2 from artificer level 10
var infusionsWithBonus = []string{"Enhanced Defense", "Enhanced Weapon", "Returning Weapon"}

// InfusionBonus is the magic bonus an infusion grants at an artificer level
func InfusionBonus(name string, level int) int {
	if !slices.ContainsFunc(infusionsWithBonus, func(n string) bool { return strings.EqualFold(n, name) }) {
		return 0
	}
	if level >= 10 {
		return 2
	}
	return 1
}

// activeInfusions reads the shared list; a read failure counts as empty
func (o *orchestrator) activeInfusions(ctx context.Context) []entities.ActiveInfusion {
	out, err := o.repo.ListActiveInfusions(ctx)
	if err != nil {
		slog.Warn("Failed to load active infusions", "error", err)
		return []entities.ActiveInfusion{}
	}
	return out.Infusions
}

func (o *orchestrator) saveInfusions(ctx context.Context, list []entities.ActiveInfusion) {
	err := o.repo.SaveActiveInfusions(ctx, sessionstate.SaveActiveInfusionsInput{Infusions: list})
	if err != nil {
		slog.Warn("Failed to save active infusions", "count", len(list), "error", err)
	}
}

// SetKnownInfusions replaces the known list, sorted, and ends any active
// infusion that is no longer known
func (o *orchestrator) SetKnownInfusions(ctx context.Context, input *SetKnownInfusionsInput) (*Result, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, state, err := o.begin(ctx, &input.Target)
	if err != nil {
		return nil, err
	}
	active := o.activeInfusions(ctx)

	known := make([]string, 0, len(input.Names))
	for _, n := range input.Names {
		n = strings.TrimSpace(n)
		if n != "" && !slices.Contains(known, n) {
			known = append(known, n)
		}
	}
	sort.Strings(known)

	if limit := c.Infusions.KnownLimit; len(known) > limit {
		res := unchanged(state, fmt.Sprintf("You can only know %d infusions.", limit))
		res.ActiveInfusions = active
		return res, nil
	}

	state.Spells.KnownInfusions = known
	kept := make([]entities.ActiveInfusion, 0, len(active))
	for _, inf := range active {
		if slices.Contains(known, inf.Name) {
			kept = append(kept, inf)
		}
	}
	if len(kept) != len(active) {
		o.saveInfusions(ctx, kept)
	}

	res := o.commit(ctx, OpSetKnownInfusions, c, state, "Known infusions updated.", nil)
	res.ActiveInfusions = kept
	return res, nil
}

// ActivateInfusion puts a known infusion on an item. The shared active
// list is capped by the artificer's active limit.
func (o *orchestrator) ActivateInfusion(ctx context.Context, input *ActivateInfusionInput) (*Result, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Item) == "" {
		return nil, errors.InvalidArgument("infusion name and item are required")
	}
	c, state, err := o.begin(ctx, &input.Target)
	if err != nil {
		return nil, err
	}
	active := o.activeInfusions(ctx)
	reject := func(msg string) (*Result, error) {
		res := unchanged(state, msg)
		res.ActiveInfusions = active
		return res, nil
	}

	rec, ok := o.resolver.ResolveInfusion(ctx, input.Name)
	if !ok {
		return reject(fmt.Sprintf("Unknown infusion %q.", input.Name))
	}
	if !slices.ContainsFunc(state.KnownInfusions(c), func(n string) bool { return strings.EqualFold(n, rec.Name) }) {
		return reject(fmt.Sprintf("%s is not a known infusion.", rec.Name))
	}
	if limit := c.Infusions.ActiveLimit; len(active) >= limit {
		return reject(fmt.Sprintf("Active infusion limit (%d) reached.", limit))
	}
	item, ok := o.resolver.ResolveEquipment(ctx, input.Item)
	if !ok || !rec.Matches(item) {
		return reject(fmt.Sprintf("%s cannot hold %s.", input.Item, rec.Name))
	}

	owner := strings.TrimSpace(input.Owner)
	if owner == "" {
		owner = c.Name
	}
	next := entities.ActiveInfusion{
		Name:  rec.Name,
		Item:  input.Item,
		Owner: owner,
		Bonus: InfusionBonus(rec.Name, c.Level),
	}
	if slices.Contains(active, next) {
		return reject(fmt.Sprintf("%s is already on %s.", rec.Name, input.Item))
	}

	active = append(slices.Clone(active), next)
	o.saveInfusions(ctx, active)
	msg := fmt.Sprintf("%s infused into %s (%s).", rec.Name, input.Item, owner)
	o.publish(ctx, OpActivateInfusion, c, msg, map[string]any{"infusion": rec.Name, "item": input.Item, "owner": owner})
	return &Result{State: state, ActiveInfusions: active, Message: msg, Changed: true}, nil
}

// DeactivateInfusion ends every active infusion with the name, narrowed by
// item and owner when given
func (o *orchestrator) DeactivateInfusion(ctx context.Context, input *DeactivateInfusionInput) (*Result, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, state, err := o.begin(ctx, &input.Target)
	if err != nil {
		return nil, err
	}
	active := o.activeInfusions(ctx)

	kept := make([]entities.ActiveInfusion, 0, len(active))
	for _, inf := range active {
		match := strings.EqualFold(inf.Name, input.Name) &&
			(input.Item == "" || inf.Item == input.Item) &&
			(input.Owner == "" || inf.Owner == input.Owner)
		if !match {
			kept = append(kept, inf)
		}
	}
	if len(kept) == len(active) {
		res := unchanged(state, fmt.Sprintf("%s is not active.", input.Name))
		res.ActiveInfusions = active
		return res, nil
	}

	o.saveInfusions(ctx, kept)
	msg := fmt.Sprintf("%s removed.", input.Name)
	o.publish(ctx, OpDeactivateInfusion, c, msg, map[string]any{"infusion": input.Name})
	return &Result{State: state, ActiveInfusions: kept, Message: msg, Changed: true}, nil
}

// ListInfusionTargets scans every character's weapons, gear and armor for
// items the infusion can go on
func (o *orchestrator) ListInfusionTargets(
	ctx context.Context,
	input *ListInfusionTargetsInput,
) (*ListInfusionTargetsOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("infusion name is required")
	}
	rec, ok := o.resolver.ResolveInfusion(ctx, input.Name)
	if !ok {
		return &ListInfusionTargetsOutput{Targets: []InfusionTarget{}}, nil
	}

	list, err := o.characters.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	targets := []InfusionTarget{}
	for _, c := range list.Characters {
		for _, name := range carriedItems(c) {
			item, ok := o.resolver.ResolveEquipment(ctx, name)
			if ok && rec.Matches(item) {
				targets = append(targets, InfusionTarget{Owner: c.Name, Item: item.Name})
			}
		}
	}
	slog.Debug("Infusion targets listed", "infusion", rec.Name, "characters", len(list.Characters), "targets", len(targets))
	return &ListInfusionTargetsOutput{Targets: targets}, nil
}

func carriedItems(c *entities.Character) []string {
	var names []string
	add := func(n string) {
		n = strings.TrimSpace(n)
		if n != "" && !slices.Contains(names, n) {
			names = append(names, n)
		}
	}
	for _, w := range c.Weapons {
		add(w)
	}
	for _, g := range c.Gear {
		add(g.Name)
	}
	for _, a := range c.Armor {
		add(a)
	}
	return names
}
