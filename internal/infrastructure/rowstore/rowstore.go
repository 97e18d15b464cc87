// Package rowstore is a minimal table/row API shared by the persistence
// adapters. Drivers: PostgREST (Supabase), DynamoDB and an in-process store.
package rowstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the fixed-width UTC layout used for timestamps written by
// this package, so that string comparison matches time order.
const TimeLayout = "2006-01-02T15:04:05.000000Z"

// ErrRemoteFailure wraps every backend or transport failure. An empty result
// is never reported through it.
var ErrRemoteFailure = errors.New("row store request failed")

type Row map[string]any

type Op string

const (
	OpEq  Op = "eq"
	OpGte Op = "gte"
	OpLte Op = "lte"
)

type Filter struct {
	Column string
	Op     Op
	Value  any
}

func Eq(column string, value any) Filter  { return Filter{Column: column, Op: OpEq, Value: value} }
func Gte(column string, value any) Filter { return Filter{Column: column, Op: OpGte, Value: value} }
func Lte(column string, value any) Filter { return Filter{Column: column, Op: OpLte, Value: value} }

type Query struct {
	Filters []Filter
	OrderBy string
	Desc    bool
	Limit   int
}

// RowStore is implemented by every driver. Update and Delete only touch rows
// matching all filters; Update returns the rows as stored after the patch.
type RowStore interface {
	Select(ctx context.Context, table string, q Query) ([]Row, error)
	Insert(ctx context.Context, table string, row Row) (Row, error)
	Update(ctx context.Context, table string, filters []Filter, patch Row) ([]Row, error)
	Delete(ctx context.Context, table string, filters []Filter) (int, error)
}

func remoteErr(op, table string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrRemoteFailure, op, table, err)
}

// encodeValue converts a Go value into its wire representation.
func encodeValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(TimeLayout)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.UTC().Format(TimeLayout)
	}
	return v
}

func encodeRow(row Row) Row {
	out := make(Row, len(row))
	for k, v := range row {
		out[k] = encodeValue(v)
	}
	return out
}

// filterLiteral renders a filter value for query strings.
func filterLiteral(v any) string {
	switch t := encodeValue(v).(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprint(t)
	}
}

// compareValues orders a and b: numerically when both are numbers, otherwise
// by their string form.
func compareValues(a, b any) int {
	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum && bNum {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	return strings.Compare(filterLiteral(a), filterLiteral(b))
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case int32:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	}
	return 0, false
}

func matches(row Row, filters []Filter) bool {
	for _, f := range filters {
		v, ok := row[f.Column]
		if !ok {
			return false
		}
		c := compareValues(v, f.Value)
		switch f.Op {
		case OpEq:
			if c != 0 {
				return false
			}
		case OpGte:
			if c < 0 {
				return false
			}
		case OpLte:
			if c > 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
