package model

// RankingRow is one entity's position in a single-indicator ranking.
// Rank is 1-based; equal values share a rank and the next distinct value
// continues from the position after the tie (competition ranking).
type RankingRow struct {
	Entity Entity  `json:"-"`
	Name   string  `json:"entity"`
	Value  float64 `json:"value"`
	Rank   int     `json:"rank"`
}

// Ranking is the ordered ranking of entities for one indicator at one
// period. Derived and ephemeral; it holds no reference back to the table.
type Ranking struct {
	Indicator Indicator
	Period    Period
	Rows      []RankingRow
}

// Observation is one (possibly missing) sample inside a series window.
// Missing samples stay in place so windows align across entities.
type Observation struct {
	Value float64
	Valid bool
}

// SeriesWindow is the trailing window of one indicator's history, aligned
// over the same periods for every included entity. Entities with no value
// anywhere in the window are not included.
type SeriesWindow struct {
	Indicator Indicator
	Periods   []Period
	Entities  []Entity
	Series    map[Entity][]Observation
}
