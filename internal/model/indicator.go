package model

import (
	"fmt"
	"strings"
)

// Indicator is one of the confidence sub-series or the composite ESI.
type Indicator int

const (
	Industrial Indicator = iota
	Services
	Consumer
	RetailTrade
	Construction
	ESI
)

// DisplayOrder is the order indicators appear in rankings output, composite
// first.
var DisplayOrder = []Indicator{
	ESI,
	Industrial,
	Services,
	Consumer,
	RetailTrade,
	Construction,
}

type indicatorInfo struct {
	suffix string // column suffix in the workbook, e.g. "DE.INDU"
	key    string // JSON key
	title  string
	weight string // weight of the component in the composite
}

var indicators = map[Indicator]indicatorInfo{
	Industrial:   {".INDU", "industrial_confidence", "Industrial Confidence", "40%"},
	Services:     {".SERV", "services_confidence", "Services Confidence", "30%"},
	Consumer:     {".CONS", "consumer_confidence", "Consumer Confidence", "20%"},
	RetailTrade:  {".RETA", "retail_confidence", "Retail Trade Confidence", "5%"},
	Construction: {".BUIL", "construction_confidence", "Construction Confidence", "5%"},
	ESI:          {".ESI", "esi", "ESI", ""},
}

// Suffix returns the workbook column suffix, including the leading dot.
func (i Indicator) Suffix() string {
	return indicators[i].suffix
}

// Key returns the stable machine-readable name used in JSON output.
func (i Indicator) Key() string {
	return indicators[i].key
}

// Title returns the display name.
func (i Indicator) Title() string {
	return indicators[i].title
}

// HeaderLabel returns the ranking-table column header, with the component's
// weight in the composite where it has one.
func (i Indicator) HeaderLabel() string {
	info := indicators[i]
	if info.weight == "" {
		return info.title
	}
	return fmt.Sprintf("%s (%s)", info.title, info.weight)
}

// ParseIndicator resolves an indicator from a column suffix (".INDU") or a
// machine-readable name ("industrial_confidence").
func ParseIndicator(name string) (Indicator, error) {
	trimmed := strings.TrimSpace(name)
	for ind, info := range indicators {
		if strings.EqualFold(trimmed, info.suffix) || strings.EqualFold(trimmed, info.key) {
			return ind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIndicator, name)
}
