package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet [character]",
	Short: "Print the full sheet view",
	Long: `Load a character by id or file name and print every derived view.

  sheet sheet psalm
  sheet sheet data/psalm.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := loadSheet(cmd, args[0])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [character]",
	Short: "Print derived combat stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := loadSheet(cmd, args[0])
		if err != nil {
			return err
		}
		return printJSON(out.Stats)
	},
}

var featuresCmd = &cobra.Command{
	Use:   "features [character]",
	Short: "Print merged features and traits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := loadSheet(cmd, args[0])
		if err != nil {
			return err
		}
		return printJSON(out.Features)
	},
}

var actionsCmd = &cobra.Command{
	Use:   "actions [character]",
	Short: "Print actions bucketed by move, action, bonus action and reaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := loadSheet(cmd, args[0])
		if err != nil {
			return err
		}
		return printJSON(out.Actions)
	},
}

var spellsCmd = &cobra.Command{
	Use:   "spells [character]",
	Short: "Print the spell model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := loadSheet(cmd, args[0])
		if err != nil {
			return err
		}
		return printJSON(out.Spells)
	},
}

type conditionsView struct {
	Active    []entities.ConditionKind `json:"active"`
	Effects   any                      `json:"effects"`
	Available []entities.ConditionKind `json:"available"`
}

var conditionsCmd = &cobra.Command{
	Use:   "conditions [character]",
	Short: "Print active conditions, their effects and the conditions that can be toggled",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := loadSheet(cmd, args[0])
		if err != nil {
			return err
		}
		view := conditionsView{
			Active:    entities.SortConditions(out.State.Conditions),
			Available: entities.AllConditions,
		}
		if out.Stats != nil {
			view.Effects = out.Stats.Conditions
		}
		return printJSON(view)
	},
}

func loadSheet(cmd *cobra.Command, id string) (*sheet.LoadSheetOutput, error) {
	return current.sheet.LoadSheet(cmd.Context(), &sheet.LoadSheetInput{CharacterID: id})
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
