package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/tracker"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
)

var (
	slotLevel     int
	altClick      bool
	infuseOwner   string
	uninfuseItem  string
	uninfuseOwner string
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Change session state: resources, hit points, conditions, infusions",
}

// mutation runs fn against the loaded character and prints the result
func mutation(use, short string, args cobra.PositionalArgs, fn func(ctx context.Context, t tracker.Target, args []string) (*tracker.Result, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := current.characters.Get(cmd.Context(), characterrepo.GetInput{ID: args[0]})
			if err != nil {
				return err
			}
			res, err := fn(cmd.Context(), tracker.Target{Character: out.Character}, args[1:])
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
}

func atoi(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.InvalidArgumentf("%s must be a number, got %q", field, s)
	}
	return n, nil
}

func onOff(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, errors.InvalidArgumentf("expected on or off, got %q", s)
}

func init() {
	resourceCmd := mutation("resource [character] [kind] [index]", "Click a resource dot", cobra.ExactArgs(3),
		func(ctx context.Context, t tracker.Target, args []string) (*tracker.Result, error) {
			kind, err := entities.ParseResourceKind(args[0])
			if err != nil {
				return nil, err
			}
			idx, err := atoi("index", args[1])
			if err != nil {
				return nil, err
			}
			return current.tracker.ToggleResourceUse(ctx, &tracker.ToggleResourceUseInput{
				Target:    t,
				Resource:  kind,
				Index:     idx,
				SlotLevel: slotLevel,
				Alt:       altClick,
			})
		})
	resourceCmd.Flags().IntVar(&slotLevel, "slot-level", 0, "spell slot level for spell_slot clicks")
	resourceCmd.Flags().BoolVar(&altClick, "alt", false, "modifier click")

	prepareCmd := mutation("prepare [character] [level] [spell]", "Toggle a prepared spell", cobra.ExactArgs(3),
		func(ctx context.Context, t tracker.Target, args []string) (*tracker.Result, error) {
			lvl, err := atoi("level", args[0])
			if err != nil {
				return nil, err
			}
			return current.tracker.TogglePreparedSpell(ctx, &tracker.TogglePreparedSpellInput{Target: t, Level: lvl, Name: args[1]})
		})

	shortRestCmd := mutation("short-rest [character]", "Take a short rest", cobra.ExactArgs(1),
		func(ctx context.Context, t tracker.Target, _ []string) (*tracker.Result, error) {
			return current.tracker.ApplyShortRest(ctx, &t)
		})
	longRestCmd := mutation("long-rest [character]", "Take a long rest", cobra.ExactArgs(1),
		func(ctx context.Context, t tracker.Target, _ []string) (*tracker.Result, error) {
			return current.tracker.ApplyLongRest(ctx, &t)
		})
	reprepareCmd := mutation("reprepare [character]", "Clear prepared spells", cobra.ExactArgs(1),
		func(ctx context.Context, t tracker.Target, _ []string) (*tracker.Result, error) {
			return current.tracker.Reprepare(ctx, &t)
		})
	clearTempCmd := mutation("clear-temp-hp [character]", "Drop temporary hit points", cobra.ExactArgs(1),
		func(ctx context.Context, t tracker.Target, _ []string) (*tracker.Result, error) {
			return current.tracker.ClearTempHP(ctx, &t)
		})

	amount := func(use, short string, fn func(context.Context, *tracker.AmountInput) (*tracker.Result, error)) *cobra.Command {
		return mutation(use, short, cobra.ExactArgs(2),
			func(ctx context.Context, t tracker.Target, args []string) (*tracker.Result, error) {
				n, err := atoi("amount", args[0])
				if err != nil {
					return nil, err
				}
				return fn(ctx, &tracker.AmountInput{Target: t, Amount: n})
			})
	}
	damageCmd := amount("damage [character] [amount]", "Apply damage", func(ctx context.Context, in *tracker.AmountInput) (*tracker.Result, error) {
		return current.tracker.ApplyDamage(ctx, in)
	})
	healCmd := amount("heal [character] [amount]", "Apply healing", func(ctx context.Context, in *tracker.AmountInput) (*tracker.Result, error) {
		return current.tracker.ApplyHealing(ctx, in)
	})
	tempCmd := amount("temp-hp [character] [amount]", "Grant temporary hit points", func(ctx context.Context, in *tracker.AmountInput) (*tracker.Result, error) {
		return current.tracker.GrantTempHP(ctx, in)
	})

	conditionCmd := mutation("condition [character] [name]", "Toggle a condition", cobra.ExactArgs(2),
		func(ctx context.Context, t tracker.Target, args []string) (*tracker.Result, error) {
			return current.tracker.ToggleCondition(ctx, &tracker.ToggleConditionInput{Target: t, Name: args[0]})
		})

	resetSlotsCmd := mutation("reset-slots [character] [level]", "Restore spent slots of one level, or all", cobra.RangeArgs(1, 2),
		func(ctx context.Context, t tracker.Target, args []string) (*tracker.Result, error) {
			in := &tracker.ResetSlotsInput{Target: t}
			if len(args) == 1 {
				lvl, err := atoi("level", args[0])
				if err != nil {
					return nil, err
				}
				in.Level = lvl
			}
			return current.tracker.ResetSlots(ctx, in)
		})

	toggle := func(use, short string, fn func(context.Context, *tracker.ToggleInput) (*tracker.Result, error)) *cobra.Command {
		return mutation(use, short, cobra.ExactArgs(2),
			func(ctx context.Context, t tracker.Target, args []string) (*tracker.Result, error) {
				on, err := onOff(args[0])
				if err != nil {
					return nil, err
				}
				return fn(ctx, &tracker.ToggleInput{Target: t, On: on})
			})
	}
	rageCmd := toggle("rage [character] on|off", "Enter or leave a rage", func(ctx context.Context, in *tracker.ToggleInput) (*tracker.Result, error) {
		return current.tracker.ToggleRage(ctx, in)
	})
	symbioticCmd := toggle("symbiotic [character] on|off", "Start or end Symbiotic Entity", func(ctx context.Context, in *tracker.ToggleInput) (*tracker.Result, error) {
		return current.tracker.ToggleSymbiotic(ctx, in)
	})

	deathSaveCmd := mutation("death-save [character] success|failure [index]", "Click a death save circle", cobra.ExactArgs(3),
		func(ctx context.Context, t tracker.Target, args []string) (*tracker.Result, error) {
			var success bool
			switch args[0] {
			case "success":
				success = true
			case "failure":
			default:
				return nil, errors.InvalidArgumentf("expected success or failure, got %q", args[0])
			}
			idx, err := atoi("index", args[1])
			if err != nil {
				return nil, err
			}
			return current.tracker.ToggleDeathSave(ctx, &tracker.ToggleDeathSaveInput{Target: t, Success: success, Index: idx})
		})

	knownCmd := mutation("infusions [character] [name...]", "Replace the known infusion list", cobra.MinimumNArgs(1),
		func(ctx context.Context, t tracker.Target, args []string) (*tracker.Result, error) {
			return current.tracker.SetKnownInfusions(ctx, &tracker.SetKnownInfusionsInput{Target: t, Names: args})
		})

	infuseCmd := mutation("infuse [character] [infusion] [item]", "Infuse an item", cobra.ExactArgs(3),
		func(ctx context.Context, t tracker.Target, args []string) (*tracker.Result, error) {
			return current.tracker.ActivateInfusion(ctx, &tracker.ActivateInfusionInput{
				Target: t,
				Name:   args[0],
				Item:   args[1],
				Owner:  infuseOwner,
			})
		})
	infuseCmd.Flags().StringVar(&infuseOwner, "owner", "", "character carrying the item (defaults to the artificer)")

	uninfuseCmd := mutation("uninfuse [character] [infusion]", "End an infusion", cobra.ExactArgs(2),
		func(ctx context.Context, t tracker.Target, args []string) (*tracker.Result, error) {
			return current.tracker.DeactivateInfusion(ctx, &tracker.DeactivateInfusionInput{
				Target: t,
				Name:   args[0],
				Item:   uninfuseItem,
				Owner:  uninfuseOwner,
			})
		})
	uninfuseCmd.Flags().StringVar(&uninfuseItem, "item", "", "only end the infusion on this item")
	uninfuseCmd.Flags().StringVar(&uninfuseOwner, "owner", "", "only end the infusion held by this character")

	targetsCmd := &cobra.Command{
		Use:   "infusion-targets [infusion]",
		Short: "List carried items an infusion can go on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := current.tracker.ListInfusionTargets(cmd.Context(), &tracker.ListInfusionTargetsInput{Name: args[0]})
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	trackCmd.AddCommand(
		resourceCmd, prepareCmd, shortRestCmd, longRestCmd, reprepareCmd,
		damageCmd, healCmd, tempCmd, clearTempCmd, conditionCmd, resetSlotsCmd,
		rageCmd, symbioticCmd, deathSaveCmd,
		knownCmd, infuseCmd, uninfuseCmd, targetsCmd,
	)
}
