// Package main is the entry point for the character sheet CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

var (
	envFile  string
	dataDirs []string
	backend  string

	current *app
)

var rootCmd = &cobra.Command{
	Use:   "sheet",
	Short: "D&D 5e character sheet engine",
	Long: `sheet loads character files, derives everything the sheet shows and
tracks per-session state such as spent slots, hit points and conditions.
Every command prints JSON to stdout.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context(), &appOptions{
			EnvFile:  envFile,
			DataDirs: dataDirs,
			Backend:  backend,
		})
		if err != nil {
			return err
		}
		current = a
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if current != nil {
			current.Close()
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, f := range errors.FieldErrors(err) {
			fmt.Fprintf(os.Stderr, "  - %s\n", f)
		}
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment")
	rootCmd.PersistentFlags().StringSliceVar(&dataDirs, "data-dir", nil, "data directories (overrides SHEET_DATA_DIRS)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "session state backend: sqlite or redis (overrides SHEET_STATE_BACKEND)")

	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(featuresCmd)
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(spellsCmd)
	rootCmd.AddCommand(conditionsCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(rollCmd)
}
