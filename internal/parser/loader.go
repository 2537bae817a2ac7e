// Package parser loads the published ESI workbook into an IndicatorTable.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/lefs/esi-util/internal/model"
)

// Loader parses the ESI spreadsheet. Each loader carries a load ID so log
// lines from one run can be correlated.
type Loader struct {
	loadID string
	log    *logrus.Entry
}

// NewLoader creates a loader.
func NewLoader() *Loader {
	id := uuid.New().String()
	return &Loader{
		loadID: id,
		log:    logrus.WithField("load_id", id),
	}
}

// LoadID returns the loader's correlation ID.
func (l *Loader) LoadID() string {
	return l.loadID
}

// Load opens the workbook at dataDir/filename, reads the named sheet and
// parses it into an IndicatorTable sorted by period ascending.
//
// Rows whose leading period label does not parse are skipped; columns whose
// header does not match the <CODE>.<COMPONENT> convention are ignored. A
// sheet with no recognized columns or no usable rows at all is malformed.
func (l *Loader) Load(dataDir, filename, sheetName string) (*model.IndicatorTable, error) {
	path := filepath.Join(dataDir, filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", model.ErrDataSourceNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	if !hasSheet(file, sheetName) {
		return nil, fmt.Errorf("%w: %q in %s", model.ErrSheetNotFound, sheetName, path)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", model.ErrMalformedTable, sheetName)
	}

	columns := l.mapColumns(rows[0])
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no indicator columns recognized in sheet %q",
			model.ErrMalformedTable, sheetName)
	}

	builder := model.NewTableBuilder()
	skipped := 0
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		period, ok := model.ParsePeriod(row[0])
		if !ok {
			l.log.WithField("label", row[0]).Debug("skipping row with unparseable period")
			skipped++
			continue
		}
		for col, key := range columns {
			if col >= len(row) {
				continue
			}
			value, ok := parseCell(row[col])
			if !ok {
				continue
			}
			builder.Set(key.entity, key.indicator, period, value)
		}
	}

	if builder.Len() == 0 {
		return nil, fmt.Errorf("%w: no usable period rows in sheet %q",
			model.ErrMalformedTable, sheetName)
	}

	table := builder.Build()
	l.log.WithFields(logrus.Fields{
		"path":         path,
		"sheet":        sheetName,
		"periods":      builder.Len(),
		"series":       len(columns),
		"skipped_rows": skipped,
	}).Info("indicator table loaded")

	return table, nil
}

type columnKey struct {
	entity    model.Entity
	indicator model.Indicator
}

// mapColumns resolves header labels like "DE.INDU" to (entity, indicator)
// pairs, keyed by column index. Column 0 is the period column.
func (l *Loader) mapColumns(header []string) map[int]columnKey {
	columns := make(map[int]columnKey)
	for col, label := range header {
		if col == 0 {
			continue
		}
		key, ok := parseColumnLabel(label)
		if !ok {
			if strings.TrimSpace(label) != "" {
				l.log.WithField("column", label).Debug("ignoring unrecognized column")
			}
			continue
		}
		columns[col] = key
	}
	return columns
}

func parseColumnLabel(label string) (columnKey, bool) {
	label = strings.ToUpper(strings.TrimSpace(label))
	code, suffix, found := strings.Cut(label, ".")
	if !found {
		return columnKey{}, false
	}
	entity, ok := model.EntityByCode(strings.ToLower(code))
	if !ok {
		return columnKey{}, false
	}
	indicator, err := model.ParseIndicator("." + suffix)
	if err != nil {
		return columnKey{}, false
	}
	return columnKey{entity: entity, indicator: indicator}, true
}

// parseCell parses one numeric cell. Blank and not-available markers are
// missing values, not errors.
func parseCell(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	switch strings.ToLower(cell) {
	case "", "na", "n/a", "nan", "#n/a":
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func hasSheet(file *excelize.File, name string) bool {
	for _, sheet := range file.GetSheetList() {
		if sheet == name {
			return true
		}
	}
	return false
}
