package runner

// pool is a capped collection of one entity category.
// Removal is mark-and-compact: retain rebuilds the slice in place, so each
// entity is visited once per pass and removed at most once.
type pool[T any] struct {
	items []T
	limit int
}

func newPool[T any](limit int) pool[T] {
	return pool[T]{items: make([]T, 0, max(limit, 0)), limit: max(limit, 0)}
}

// Len returns the number of live entities.
func (p *pool[T]) Len() int {
	return len(p.items)
}

// Full reports whether a spawn would be refused.
func (p *pool[T]) Full() bool {
	return len(p.items) >= p.limit
}

// add appends v unless the pool is at its cap.
func (p *pool[T]) add(v T) bool {
	if p.Full() {
		return false
	}
	p.items = append(p.items, v)
	return true
}

// push appends v and evicts the oldest entities past the cap.
func (p *pool[T]) push(v T) (evicted int) {
	p.items = append(p.items, v)
	if over := len(p.items) - p.limit; over > 0 {
		copy(p.items, p.items[over:])
		p.items = p.items[:p.limit]
		return over
	}
	return 0
}

// retain keeps the entities for which keep returns true. keep may mutate
// the entity it is given. Returns how many were removed.
func (p *pool[T]) retain(keep func(*T) bool) int {
	before := len(p.items)
	kept := p.items[:0]
	for i := range p.items {
		if keep(&p.items[i]) {
			kept = append(kept, p.items[i])
		}
	}
	var zero T
	for i := len(kept); i < before; i++ {
		p.items[i] = zero
	}
	p.items = kept
	return before - len(kept)
}

// truncate drops entities beyond the cap. Spawn already refuses past the
// cap; this guards every other insertion path.
func (p *pool[T]) truncate() int {
	if len(p.items) <= p.limit {
		return 0
	}
	dropped := len(p.items) - p.limit
	p.items = p.items[:p.limit]
	return dropped
}

// reset empties the pool and applies a new cap.
func (p *pool[T]) reset(limit int) {
	p.items = p.items[:0]
	p.limit = max(limit, 0)
}

// snapshot returns a copy that shares no memory with the pool.
func (p *pool[T]) snapshot() []T {
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}
