package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vololibero/quizvl/internal/store"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [key] [true|false]",
	Short: "Show or change settings",
	Long: "Without arguments, print every setting. With a key, print that setting.\n" +
		"With a key and a value, store the value. Keys: paragliding, delta.",
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 && !store.IsSettingKey(args[0]) {
			return fmt.Errorf("%q: %w", args[0], store.ErrUnknownSetting)
		}
		var value bool
		if len(args) == 2 {
			v, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid value %q: want true or false", args[1])
			}
			value = v
		}

		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		repo := rt.deps.Settings
		if len(args) == 2 {
			if err := repo.Set(ctx, args[0], value); err != nil {
				return corruptHint(err, "settings")
			}
		}

		st, err := repo.Load(ctx)
		if err != nil {
			return corruptHint(err, "settings")
		}

		out := cmd.OutOrStdout()
		keys := store.SettingKeys()
		if len(args) > 0 {
			keys = args[:1]
		}
		for _, k := range keys {
			fmt.Fprintf(out, "%s=%s\n", k, st[k])
		}
		return nil
	},
}
