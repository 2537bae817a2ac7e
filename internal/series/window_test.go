package series

import (
	"reflect"
	"testing"
	"time"

	"github.com/lefs/esi-util/internal/model"
)

func monthSequence(start model.Period, n int) []model.Period {
	periods := make([]model.Period, n)
	t := time.Date(start.Year, start.Month, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		periods[i] = model.Period{Year: t.Year(), Month: t.Month()}
		t = t.AddDate(0, 1, 0)
	}
	return periods
}

func TestWindowTakesMostRecentPeriods(t *testing.T) {
	b := model.NewTableBuilder()
	periods := monthSequence(model.Period{Year: 2022, Month: time.January}, 20)
	for _, p := range periods {
		b.Set(model.EntityDE, model.ESI, p, 100.0)
	}

	w, err := Window(b.Build(), model.ESI, 12)
	if err != nil {
		t.Fatalf("Window failed: %v", err)
	}
	if len(w.Periods) != 12 {
		t.Fatalf("Periods len = %d, want 12", len(w.Periods))
	}
	if !reflect.DeepEqual(w.Periods, periods[8:]) {
		t.Errorf("Periods = %v, want the 12 most recent", w.Periods)
	}
}

func TestWindowTruncatesToAvailableHistory(t *testing.T) {
	b := model.NewTableBuilder()
	for _, p := range monthSequence(model.Period{Year: 2022, Month: time.January}, 20) {
		b.Set(model.EntityDE, model.ESI, p, 100.0)
	}

	w, err := Window(b.Build(), model.ESI, 36)
	if err != nil {
		t.Fatalf("Window failed: %v", err)
	}
	if len(w.Periods) != 20 {
		t.Errorf("Periods len = %d, want 20 (all available, no error)", len(w.Periods))
	}
}

// An entity that stopped reporting is out of the latest ranking but still
// charts, with explicit gaps at the end of its series.
func TestWindowKeepsTrailingMissingMarkers(t *testing.T) {
	b := model.NewTableBuilder()
	periods := monthSequence(model.Period{Year: 2022, Month: time.June}, 12)
	for i, p := range periods {
		b.Set(model.EntityDE, model.ESI, p, 100.0)
		if i < len(periods)-3 {
			b.Set(model.EntityUK, model.ESI, p, 90.0)
		}
	}

	w, err := Window(b.Build(), model.ESI, 12)
	if err != nil {
		t.Fatalf("Window failed: %v", err)
	}

	uk, ok := w.Series[model.EntityUK]
	if !ok {
		t.Fatal("UK should still appear in the window")
	}
	if len(uk) != len(w.Periods) {
		t.Fatalf("UK series len = %d, want %d (aligned)", len(uk), len(w.Periods))
	}
	for i, o := range uk {
		wantValid := i < len(periods)-3
		if o.Valid != wantValid {
			t.Errorf("UK observation %d valid = %v, want %v", i, o.Valid, wantValid)
		}
	}
}

func TestWindowExcludesEntitiesWithNoValues(t *testing.T) {
	b := model.NewTableBuilder()
	periods := monthSequence(model.Period{Year: 2023, Month: time.January}, 6)
	for _, p := range periods {
		b.Set(model.EntityDE, model.ESI, p, 100.0)
	}
	// FR only has history before the window.
	b.Set(model.EntityFR, model.ESI, model.Period{Year: 2020, Month: time.January}, 95.0)

	w, err := Window(b.Build(), model.ESI, 6)
	if err != nil {
		t.Fatalf("Window failed: %v", err)
	}
	if _, ok := w.Series[model.EntityFR]; ok {
		t.Error("FR has no value in the window and should be excluded")
	}
	for _, e := range w.Entities {
		if e == model.EntityFR {
			t.Error("FR should not be listed in Entities")
		}
	}
}

// The anchor is the latest period across all entities, so a lagging entity
// gets trailing gaps rather than shifting the axis.
func TestWindowAnchorIsGlobal(t *testing.T) {
	b := model.NewTableBuilder()
	periods := monthSequence(model.Period{Year: 2023, Month: time.January}, 5)
	for i, p := range periods {
		b.Set(model.EntityDE, model.ESI, p, 100.0)
		if i < 3 {
			b.Set(model.EntityFR, model.ESI, p, 95.0)
		}
	}

	w, err := Window(b.Build(), model.ESI, 5)
	if err != nil {
		t.Fatalf("Window failed: %v", err)
	}
	if w.Periods[len(w.Periods)-1] != periods[4] {
		t.Errorf("window should end at the global latest period %v", periods[4])
	}
	fr := w.Series[model.EntityFR]
	if fr[3].Valid || fr[4].Valid {
		t.Error("FR trailing observations should be missing markers")
	}
}

func TestWindowLargerMonthsExtends(t *testing.T) {
	b := model.NewTableBuilder()
	for _, p := range monthSequence(model.Period{Year: 2022, Month: time.January}, 10) {
		b.Set(model.EntityDE, model.ESI, p, 100.0)
	}
	table := b.Build()

	small, err := Window(table, model.ESI, 3)
	if err != nil {
		t.Fatalf("Window(3) failed: %v", err)
	}
	large, err := Window(table, model.ESI, 5)
	if err != nil {
		t.Fatalf("Window(5) failed: %v", err)
	}
	if !reflect.DeepEqual(large.Periods[2:], small.Periods) {
		t.Error("growing months should extend the window backwards, never reshape it")
	}
}

func TestWindowRejectsNonPositiveMonths(t *testing.T) {
	b := model.NewTableBuilder()
	b.Set(model.EntityDE, model.ESI, model.Period{Year: 2023, Month: time.May}, 100.0)
	table := b.Build()

	if _, err := Window(table, model.ESI, 0); err == nil {
		t.Error("Window should reject months = 0")
	}
	if _, err := Window(table, model.ESI, -4); err == nil {
		t.Error("Window should reject negative months")
	}
}

func TestWindowDeterministic(t *testing.T) {
	b := model.NewTableBuilder()
	for _, p := range monthSequence(model.Period{Year: 2022, Month: time.January}, 8) {
		b.Set(model.EntityDE, model.ESI, p, 100.0)
		b.Set(model.EntityFR, model.ESI, p, 95.0)
	}
	table := b.Build()

	first, err := Window(table, model.ESI, 6)
	if err != nil {
		t.Fatalf("Window failed: %v", err)
	}
	second, err := Window(table, model.ESI, 6)
	if err != nil {
		t.Fatalf("Window failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two identical calls should produce identical windows")
	}
}
