// Package series extracts trailing windows of indicator history for
// charting.
package series

import (
	"fmt"

	"github.com/lefs/esi-util/internal/model"
)

// Window extracts the up-to-months most recent periods for the indicator,
// anchored at the latest period with any value across all entities. Asking
// for more months than the table holds truncates to the available history.
//
// Every included entity's series has the same length as the period axis;
// gaps stay as invalid Observations so charts can show them as gaps.
// Entities with no value anywhere in the window are not included.
func Window(table *model.IndicatorTable, ind model.Indicator, months int) (*model.SeriesWindow, error) {
	if months < 1 {
		return nil, fmt.Errorf("months must be >= 1, got %d", months)
	}

	periods := table.PeriodsWith(ind)
	if len(periods) == 0 {
		return nil, fmt.Errorf("%w: no data for %s in table", model.ErrUnknownIndicator, ind.Key())
	}
	if len(periods) > months {
		periods = periods[len(periods)-months:]
	}

	window := &model.SeriesWindow{
		Indicator: ind,
		Periods:   periods,
		Series:    make(map[model.Entity][]model.Observation),
	}
	for _, e := range model.Entities {
		observations := make([]model.Observation, len(periods))
		any := false
		for i, p := range periods {
			if v, ok := table.Value(e, ind, p); ok {
				observations[i] = model.Observation{Value: v, Valid: true}
				any = true
			}
		}
		if !any {
			continue
		}
		window.Entities = append(window.Entities, e)
		window.Series[e] = observations
	}

	return window, nil
}
