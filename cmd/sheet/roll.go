package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
)

const defaultRollContext = "rolls"

var (
	rollContext string
	rollLabel   string
)

var rollCmd = &cobra.Command{
	Use:   "roll [character] [attack|notation]",
	Short: "Roll an attack by name or any dice notation",
	Long: `Roll one of the character's attacks by name, or an arbitrary expression.
Rolls are kept in a Redis-backed session per character and context.

  sheet roll brakka Greataxe
  sheet roll psalm "2d6+1d4-1" --label "Sacred Flame"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		loaded, err := current.characters.Get(ctx, characterrepo.GetInput{ID: args[0]})
		if err != nil {
			return err
		}
		svc, err := current.diceService(ctx)
		if err != nil {
			return err
		}

		view, err := current.sheet.Refresh(ctx, &sheet.RefreshInput{Character: loaded.Character})
		if err != nil {
			return err
		}
		if view.Stats != nil {
			for _, atk := range view.Stats.Attacks {
				if strings.EqualFold(atk.Name, args[1]) {
					out, err := svc.RollAttack(ctx, &dice.RollAttackInput{
						CharacterID: loaded.Character.GetID(),
						Context:     rollContext,
						Attack:      atk,
					})
					if err != nil {
						return err
					}
					return printJSON(out)
				}
			}
		}

		rollCtx := rollContext
		if rollCtx == "" {
			rollCtx = defaultRollContext
		}
		out, err := svc.RollDice(ctx, &dice.RollDiceInput{
			CharacterID: loaded.Character.GetID(),
			Context:     rollCtx,
			Notation:    args[1],
			Label:       rollLabel,
		})
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var rollHistoryCmd = &cobra.Command{
	Use:   "history [character]",
	Short: "Print the rolls kept for a context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := characterID(cmd, args[0])
		if err != nil {
			return err
		}
		svc, err := current.diceService(cmd.Context())
		if err != nil {
			return err
		}
		out, err := svc.GetRollSession(cmd.Context(), &dice.GetRollSessionInput{
			CharacterID: id,
			Context:     historyContext(),
		})
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var rollClearCmd = &cobra.Command{
	Use:   "clear [character]",
	Short: "Forget the rolls kept for a context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := characterID(cmd, args[0])
		if err != nil {
			return err
		}
		svc, err := current.diceService(cmd.Context())
		if err != nil {
			return err
		}
		out, err := svc.ClearRollSession(cmd.Context(), &dice.ClearRollSessionInput{
			CharacterID: id,
			Context:     historyContext(),
		})
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

// characterID maps a file name or id to the id sessions are keyed by
func characterID(cmd *cobra.Command, ref string) (string, error) {
	out, err := current.characters.Get(cmd.Context(), characterrepo.GetInput{ID: ref})
	if err != nil {
		return "", err
	}
	return out.Character.GetID(), nil
}

func historyContext() string {
	if rollContext == "" {
		return defaultRollContext
	}
	return rollContext
}

func init() {
	rollCmd.PersistentFlags().StringVar(&rollContext, "context", "", "roll session context (attacks default to \""+dice.ContextAttacks+"\")")
	rollCmd.Flags().StringVar(&rollLabel, "label", "", "label stored with a notation roll")
	rollCmd.AddCommand(rollHistoryCmd, rollClearCmd)
}
