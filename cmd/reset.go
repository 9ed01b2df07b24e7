package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetTargets = []string{"answers", "sections", "settings", "all"}

var resetCmd = &cobra.Command{
	Use:       "reset [answers|sections|settings|all]",
	Short:     "Reset stored progress",
	Long:      "Reset miss counts and the answer log (answers), completed sections, settings, or everything (default).",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: resetTargets,
	RunE: func(cmd *cobra.Command, args []string) error {
		target := "all"
		if len(args) == 1 {
			target = args[0]
		}

		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		deps := rt.deps
		all := target == "all"

		if all || target == "answers" {
			if err := deps.Answers.Reset(ctx); err != nil {
				return fmt.Errorf("reset answers: %w", err)
			}
			if err := deps.Events.Reset(ctx); err != nil {
				return fmt.Errorf("reset answer log: %w", err)
			}
		}
		if all || target == "sections" {
			if err := deps.Sections.Reset(ctx); err != nil {
				return fmt.Errorf("reset sections: %w", err)
			}
		}
		if all || target == "settings" {
			if err := deps.Settings.Reset(ctx); err != nil {
				return fmt.Errorf("reset settings: %w", err)
			}
		}

		deps.Log.Info("reset", "target", target)
		fmt.Fprintf(cmd.OutOrStdout(), "Reset %s.\n", target)
		return nil
	},
}
