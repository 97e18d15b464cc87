package rowstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps tables in process. It backs mock mode and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string][]Row
	now    func() time.Time
}

var _ RowStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: map[string][]Row{}, now: time.Now}
}

// Seed appends rows verbatim, without generating ids.
func (s *MemoryStore) Seed(table string, rows ...Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rows {
		s.tables[table] = append(s.tables[table], encodeRow(r))
	}
}

func (s *MemoryStore) Select(_ context.Context, table string, q Query) ([]Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Row, 0)
	for _, r := range s.tables[table] {
		if matches(r, q.Filters) {
			out = append(out, cloneRow(r))
		}
	}
	sortRows(out, q.OrderBy, q.Desc)
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *MemoryStore) Insert(_ context.Context, table string, row Row) (Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := prepareInsert(row, s.now())
	s.tables[table] = append(s.tables[table], r)
	return cloneRow(r), nil
}

func (s *MemoryStore) Update(_ context.Context, table string, filters []Filter, patch Row) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enc := encodeRow(patch)
	out := make([]Row, 0)
	for _, r := range s.tables[table] {
		if !matches(r, filters) {
			continue
		}
		for k, v := range enc {
			r[k] = v
		}
		out = append(out, cloneRow(r))
	}
	return out, nil
}

func (s *MemoryStore) Delete(_ context.Context, table string, filters []Filter) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tables[table][:0]
	removed := 0
	for _, r := range s.tables[table] {
		if matches(r, filters) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.tables[table] = kept
	return removed, nil
}

// prepareInsert fills id and created_at the way the hosted backend does.
func prepareInsert(row Row, now time.Time) Row {
	r := encodeRow(row)
	if v, ok := r["id"]; !ok || v == nil || v == "" {
		r["id"] = uuid.NewString()
	}
	if v, ok := r["created_at"]; !ok || v == nil || v == "" {
		r["created_at"] = now.UTC().Format(TimeLayout)
	}
	return r
}

func cloneRow(r Row) Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func sortRows(rows []Row, column string, desc bool) {
	if column == "" {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		c := compareValues(rows[i][column], rows[j][column])
		if desc {
			return c > 0
		}
		return c < 0
	})
}
