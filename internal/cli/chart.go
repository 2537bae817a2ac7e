package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lefs/esi-util/internal/model"
	"github.com/lefs/esi-util/internal/render"
	"github.com/lefs/esi-util/internal/series"
)

type chartDef struct {
	use       string
	indicator model.Indicator
}

var chartCommands = []chartDef{
	{"industrial-chart", model.Industrial},
	{"services-chart", model.Services},
	{"consumer-chart", model.Consumer},
	{"retail-trade-chart", model.RetailTrade},
	{"construction-chart", model.Construction},
	{"esi-chart", model.ESI},
}

func newChartCommand(opts *rootOptions, def chartDef) *cobra.Command {
	var filename string
	var months int

	cmd := &cobra.Command{
		Use:   def.use,
		Short: fmt.Sprintf("Render an SVG chart with %s history", def.indicator.Title()),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("months") {
				months = opts.cfg.Chart.Months
			}

			table, err := loadTable(opts)
			if err != nil {
				return err
			}
			window, err := series.Window(table, def.indicator, months)
			if err != nil {
				return err
			}

			title := fmt.Sprintf("ESI - %s (past %d months)", def.indicator.Title(), months)
			if filename != "" {
				return render.ChartFile(filename, window, title)
			}
			return render.ChartSVG(cmd.OutOrStdout(), window, title)
		},
	}

	cmd.Flags().StringVar(&filename, "filename", "", "write the SVG to this file instead of stdout")
	cmd.Flags().IntVar(&months, "months", 12, "trailing window size in months")

	return cmd
}
