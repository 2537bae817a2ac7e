package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Period is one calendar month of the indicator history.
type Period struct {
	Year  int
	Month time.Month
}

// The ESI workbook labels period rows as "2023M05"; exported copies and
// re-saved files show up with plain date formats instead.
var (
	monthLabelRe = regexp.MustCompile(`^(\d{4})[Mm](\d{1,2})$`)
	yearMonthRe  = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})$`)
)

var periodDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01-02-06",
	"Jan-06",
}

// ParsePeriod parses a period row label. It reports false for labels it
// does not recognize so callers can skip the row.
func ParsePeriod(label string) (Period, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Period{}, false
	}

	if m := monthLabelRe.FindStringSubmatch(label); m != nil {
		return newPeriod(m[1], m[2])
	}
	if m := yearMonthRe.FindStringSubmatch(label); m != nil {
		return newPeriod(m[1], m[2])
	}
	for _, layout := range periodDateLayouts {
		if t, err := time.Parse(layout, label); err == nil {
			return Period{Year: t.Year(), Month: t.Month()}, true
		}
	}

	return Period{}, false
}

func newPeriod(yearStr, monthStr string) (Period, bool) {
	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	if month < 1 || month > 12 {
		return Period{}, false
	}
	return Period{Year: year, Month: time.Month(month)}, true
}

// String formats the period as "2023-05".
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Before reports whether p is earlier than o.
func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Month < o.Month
}

// After reports whether p is later than o.
func (p Period) After(o Period) bool {
	return o.Before(p)
}
