package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lefs/esi-util/internal/model"
)

// RankingJSON writes the rankings as a JSON object keyed by indicator name,
// each holding an array of {entity, value, rank} rows. Keys keep the given
// ranking order, so output is byte-identical across runs.
func RankingJSON(w io.Writer, rankings []*model.Ranking) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range rankings {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Indicator.Key())
		if err != nil {
			return fmt.Errorf("encode rankings: %w", err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		rows, err := json.Marshal(r.Rows)
		if err != nil {
			return fmt.Errorf("encode rankings: %w", err)
		}
		buf.Write(rows)
	}
	buf.WriteString("}\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write rankings: %w", err)
	}
	return nil
}
