package render

import (
	"strconv"
	"strings"

	"github.com/lefs/esi-util/internal/model"
)

const (
	ansiBold  = "\033[1m"
	ansiGreen = "\033[92m"
	ansiRed   = "\033[91m"
	ansiReset = "\033[0m"
)

// RankingTable lays the rankings out side by side, one column per
// indicator, rows ordered best to worst. The leader of each column is
// green, the trailer red. Columns may have different lengths because
// entities missing at an indicator's latest period are excluded from that
// column only.
func RankingTable(rankings []*model.Ranking, title string) string {
	headers := make([]string, len(rankings))
	columns := make([][]string, len(rankings))
	depth := 0
	for i, r := range rankings {
		headers[i] = r.Indicator.HeaderLabel()
		cells := make([]string, len(r.Rows))
		for j, row := range r.Rows {
			cells[j] = row.Name + " (" + formatValue(row.Value) + ")"
		}
		columns[i] = cells
		if len(cells) > depth {
			depth = len(cells)
		}
	}

	widths := make([]int, len(columns))
	for i := range columns {
		widths[i] = len(headers[i])
		for _, cell := range columns[i] {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(title)
		b.WriteByte('\n')
	}
	for i, header := range headers {
		cell := pad(header, widths[i])
		if rankings[i].Indicator == model.ESI {
			cell = ansiBold + cell + ansiReset
		}
		writeCell(&b, cell, i)
	}
	b.WriteByte('\n')
	for i := range headers {
		writeCell(&b, strings.Repeat("-", widths[i]), i)
	}
	b.WriteByte('\n')

	for row := 0; row < depth; row++ {
		for i, cells := range columns {
			var cell string
			switch {
			case row >= len(cells):
				cell = pad("", widths[i])
			case row == 0:
				cell = ansiGreen + pad(cells[row], widths[i]) + ansiReset
			case row == len(cells)-1:
				cell = ansiRed + pad(cells[row], widths[i]) + ansiReset
			default:
				cell = pad(cells[row], widths[i])
			}
			writeCell(&b, cell, i)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func writeCell(b *strings.Builder, cell string, col int) {
	if col > 0 {
		b.WriteString("  ")
	}
	b.WriteString(cell)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
