package repository

import (
	"fmt"
	"strings"
	"time"

	"painel_master/internal/domain/entities"
	"painel_master/internal/infrastructure/rowstore"

	"github.com/mitchellh/mapstructure"
)

// timestampLayouts covers what the hosted backend returns (timestamptz with an
// offset), what the local drivers write and bare dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	rowstore.TimeLayout,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05",
	entities.CivilDateLayout,
}

// decodeRow copies a row into an item struct tagged with `mapstructure`.
// Numeric ids and json.Number values are coerced to the field type.
func decodeRow(row rowstore.Row, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(map[string]any(row)); err != nil {
		return fmt.Errorf("decode row: %w", err)
	}
	return nil
}

// encodeItem flattens an item struct into a row, honoring omitempty.
func encodeItem(item any) (rowstore.Row, error) {
	out := map[string]any{}
	if err := mapstructure.Decode(item, &out); err != nil {
		return nil, fmt.Errorf("encode row: %w", err)
	}
	return rowstore.Row(out), nil
}

func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(rowstore.TimeLayout)
}

// parseDate reads a civil date column; unparseable values read as zero.
func parseDate(s string) time.Time {
	d, err := entities.ParseCivilDate(s)
	if err != nil {
		return time.Time{}
	}
	return d
}
