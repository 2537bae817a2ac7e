// Package ranking orders entities by indicator value at a single period.
package ranking

import (
	"fmt"
	"sort"

	"github.com/lefs/esi-util/internal/model"
)

// Latest ranks all entities at the most recent period with any value for
// the indicator. Entities without a value at that exact period are left out
// entirely; a ranking over absent values has no meaning.
func Latest(table *model.IndicatorTable, ind model.Indicator) (*model.Ranking, error) {
	period, ok := table.LatestPeriod(ind)
	if !ok {
		return nil, fmt.Errorf("%w: no data for %s in table", model.ErrUnknownIndicator, ind.Key())
	}
	return At(table, ind, period)
}

// At ranks all entities with a value at the given period.
func At(table *model.IndicatorTable, ind model.Indicator, period model.Period) (*model.Ranking, error) {
	rows := make([]model.RankingRow, 0, len(model.Entities))
	for _, e := range model.Entities {
		v, ok := table.Value(e, ind, period)
		if !ok {
			continue
		}
		rows = append(rows, model.RankingRow{
			Entity: e,
			Name:   e.Name(),
			Value:  v,
		})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no values for %s at %s", ind.Key(), period)
	}

	// Higher index = more positive sentiment. Stable sort keeps canonical
	// entity order for equal values.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value > rows[j].Value
	})

	// Competition ranking: ties share a rank, the next distinct value takes
	// its list position.
	for i := range rows {
		if i > 0 && rows[i].Value == rows[i-1].Value {
			rows[i].Rank = rows[i-1].Rank
			continue
		}
		rows[i].Rank = i + 1
	}

	return &model.Ranking{Indicator: ind, Period: period, Rows: rows}, nil
}

// LatestAll produces one latest-period ranking per indicator, in display
// order. Each indicator's latest period is computed independently.
func LatestAll(table *model.IndicatorTable) ([]*model.Ranking, error) {
	return forEachIndicator(func(ind model.Indicator) (*model.Ranking, error) {
		return Latest(table, ind)
	})
}

// AtAll produces one ranking per indicator at an explicit period.
func AtAll(table *model.IndicatorTable, period model.Period) ([]*model.Ranking, error) {
	return forEachIndicator(func(ind model.Indicator) (*model.Ranking, error) {
		return At(table, ind, period)
	})
}

func forEachIndicator(rank func(model.Indicator) (*model.Ranking, error)) ([]*model.Ranking, error) {
	rankings := make([]*model.Ranking, 0, len(model.DisplayOrder))
	for _, ind := range model.DisplayOrder {
		r, err := rank(ind)
		if err != nil {
			return nil, err
		}
		rankings = append(rankings, r)
	}
	return rankings, nil
}
