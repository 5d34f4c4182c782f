package attendance

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	records []Record
	seen    map[string]struct{}
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{seen: make(map[string]struct{})}
}

func (r *MemoryRepo) Insert(ctx context.Context, record Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := record.StudentID + "|" + record.SessionID
	if _, dup := r.seen[key]; dup {
		return ErrDuplicateCheckIn
	}
	r.seen[key] = struct{}{}
	r.records = append(r.records, record)
	return nil
}

func (r *MemoryRepo) ListByStudent(ctx context.Context, studentID string, limit int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 30
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Record
	for _, rec := range r.records {
		if rec.StudentID == studentID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckInTime.After(out[j].CheckInTime) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
