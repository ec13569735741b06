package seed

import "github.com/google/uuid"

// Index maps entity identifiers to already-persisted entities of one group.
// It is built from what the store currently holds (not from fixtures), right
// before a dependent group resolves its forward references. Lookup is
// exact-match; a miss means the reference is dropped by the caller.
type Index[T any] struct {
	byID map[uuid.UUID]T
}

// BuildIndex creates an index over items using the given identifier accessor.
func BuildIndex[T any](items []T, id func(T) uuid.UUID) Index[T] {
	byID := make(map[uuid.UUID]T, len(items))
	for _, item := range items {
		byID[id(item)] = item
	}
	return Index[T]{byID: byID}
}

// Resolve returns the entity for id, if one was persisted.
func (ix Index[T]) Resolve(id uuid.UUID) (T, bool) {
	item, ok := ix.byID[id]
	return item, ok
}

// Len returns the number of indexed entities.
func (ix Index[T]) Len() int {
	return len(ix.byID)
}
