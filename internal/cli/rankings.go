package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lefs/esi-util/internal/model"
	"github.com/lefs/esi-util/internal/ranking"
	"github.com/lefs/esi-util/internal/render"
)

func newLatestRankingsCommand(opts *rootOptions) *cobra.Command {
	var jsonOutput bool
	var date string

	cmd := &cobra.Command{
		Use:   "latest-rankings",
		Short: "Rank entities by the latest published value of every indicator",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(opts)
			if err != nil {
				return err
			}

			var rankings []*model.Ranking
			title := ""
			if date != "" {
				period, ok := model.ParsePeriod(date)
				if !ok {
					return fmt.Errorf("invalid date %q, want YYYY-MM", date)
				}
				rankings, err = ranking.AtAll(table, period)
				title = fmt.Sprintf("Rankings for %s", period)
			} else {
				rankings, err = ranking.LatestAll(table)
			}
			if err != nil {
				return err
			}

			if jsonOutput {
				return render.RankingJSON(cmd.OutOrStdout(), rankings)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.RankingTable(rankings, title))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json-output", false, "output rankings as JSON")
	cmd.Flags().StringVar(&date, "date", "", "rank at an explicit period (YYYY-MM) instead of the latest")

	return cmd
}
