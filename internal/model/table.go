package model

import "sort"

type seriesKey struct {
	Entity    Entity
	Indicator Indicator
}

// IndicatorTable holds every (entity, indicator) series parsed from the
// workbook, indexed over one shared ascending period axis. It is built once
// by the loader and read-only afterwards.
type IndicatorTable struct {
	periods []Period
	values  map[seriesKey]map[Period]float64
}

// TableBuilder accumulates cells during the load and produces the immutable
// table.
type TableBuilder struct {
	periodSeen map[Period]bool
	values     map[seriesKey]map[Period]float64
}

// NewTableBuilder creates an empty builder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{
		periodSeen: make(map[Period]bool),
		values:     make(map[seriesKey]map[Period]float64),
	}
}

// Set records one cell. Setting the same (entity, indicator, period) twice
// keeps the later value; workbook revisions re-publish rows.
func (b *TableBuilder) Set(e Entity, i Indicator, p Period, value float64) {
	b.periodSeen[p] = true
	key := seriesKey{Entity: e, Indicator: i}
	series, ok := b.values[key]
	if !ok {
		series = make(map[Period]float64)
		b.values[key] = series
	}
	series[p] = value
}

// Len returns the number of distinct periods recorded so far.
func (b *TableBuilder) Len() int {
	return len(b.periodSeen)
}

// Build sorts the period axis ascending and returns the finished table.
func (b *TableBuilder) Build() *IndicatorTable {
	periods := make([]Period, 0, len(b.periodSeen))
	for p := range b.periodSeen {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Before(periods[j])
	})
	return &IndicatorTable{
		periods: periods,
		values:  b.values,
	}
}

// Periods returns a copy of the ascending period axis.
func (t *IndicatorTable) Periods() []Period {
	out := make([]Period, len(t.periods))
	copy(out, t.periods)
	return out
}

// Value returns the value for one cell, and whether the cell is present.
func (t *IndicatorTable) Value(e Entity, i Indicator, p Period) (float64, bool) {
	series, ok := t.values[seriesKey{Entity: e, Indicator: i}]
	if !ok {
		return 0, false
	}
	v, ok := series[p]
	return v, ok
}

// HasSeries reports whether any value exists for the (entity, indicator)
// pair.
func (t *IndicatorTable) HasSeries(e Entity, i Indicator) bool {
	return len(t.values[seriesKey{Entity: e, Indicator: i}]) > 0
}

// LatestPeriod returns the most recent period with at least one non-missing
// value for the indicator. Different indicators report with different lags,
// so this is computed per indicator, never globally.
func (t *IndicatorTable) LatestPeriod(i Indicator) (Period, bool) {
	for idx := len(t.periods) - 1; idx >= 0; idx-- {
		p := t.periods[idx]
		for _, e := range Entities {
			if _, ok := t.Value(e, i, p); ok {
				return p, true
			}
		}
	}
	return Period{}, false
}

// PeriodsWith returns, ascending, the periods where at least one entity has
// a value for the indicator.
func (t *IndicatorTable) PeriodsWith(i Indicator) []Period {
	out := make([]Period, 0, len(t.periods))
	for _, p := range t.periods {
		for _, e := range Entities {
			if _, ok := t.Value(e, i, p); ok {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
