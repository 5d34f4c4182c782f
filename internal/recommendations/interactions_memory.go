package recommendations

import (
	"context"
	"sync"
)

type MemoryInteractionsRepo struct {
	mu    sync.Mutex
	items []Interaction
}

func NewMemoryInteractionsRepo() *MemoryInteractionsRepo {
	return &MemoryInteractionsRepo{}
}

func (r *MemoryInteractionsRepo) Insert(ctx context.Context, interaction Interaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.items = append(r.items, interaction)
	r.mu.Unlock()
	return nil
}

// All returns a copy of everything stored, oldest first.
func (r *MemoryInteractionsRepo) All() []Interaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Interaction, len(r.items))
	copy(out, r.items)
	return out
}
