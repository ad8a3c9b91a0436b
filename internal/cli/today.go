package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/proverbial/internal/daily"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Print today's date and acronym",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := loadPuzzles(cfg)
		if err != nil {
			return err
		}
		now := daily.In(cfg.Location)()
		p, _, err := daily.Select(now, set)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  (%d words)\n", daily.DateKey(now), p.Acronym, p.WordCount())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
