package stockpile

import (
	"github.com/pkg/errors"
	"github.com/tidwall/btree"
)

// Repository is an in-memory store of T records addressed by their unique
// primary key. Iteration and snapshots follow ascending key order.
//
// A Repository is not safe for concurrent use; callers that share one
// across goroutines must serialize access externally.
type Repository[T Keyed] struct {
	pks *btree.BTree
}

// New creates an empty repository.
func New[T Keyed]() *Repository[T] {
	return &Repository[T]{
		pks: btree.NewNonConcurrent(byPrimaryKeys[T]),
	}
}

// Add inserts a new record. The record's key must not be present yet,
// otherwise ErrKeyAlreadyExists is returned and the repository is left
// unchanged. Records implementing Validator are verified first.
func (r *Repository[T]) Add(item T) error {
	if err := validate(item); err != nil {
		return err
	}

	ent := newEntry(item)
	existing := r.pks.Set(ent)
	if existing != nil {
		// put the previous owner of the key back
		_ = r.pks.Set(existing)
		return errors.Wrapf(ErrKeyAlreadyExists, "key %d", ent.key)
	}

	return nil
}

// Get returns a detached copy of the record stored under key. The caller
// may mutate the result freely without affecting the repository.
func (r *Repository[T]) Get(key int64) (T, error) {
	ent, err := r.findByKey(key)
	if err != nil {
		var zero T
		return zero, err
	}

	return ent.clone(), nil
}

// All returns a snapshot of every record in ascending key order. Both the
// slice and the records are detached copies.
func (r *Repository[T]) All() []T {
	result := make([]T, 0, r.pks.Len())
	r.pks.Ascend(nil, func(i interface{}) bool {
		ent, ok := i.(*entry[T])
		if !ok {
			panic(castPanic)
		}

		result = append(result, ent.clone())
		return true
	})

	return result
}

// Remove deletes the record stored under key, or fails with
// ErrKeyDoesNotExist when it is absent.
func (r *Repository[T]) Remove(key int64) error {
	if removed := r.pks.Delete(&entry[T]{key: key}); removed == nil {
		return errors.Wrapf(ErrKeyDoesNotExist, "key %d", key)
	}

	return nil
}

// Count reports the number of stored records.
func (r *Repository[T]) Count() int {
	return r.pks.Len()
}

// Replace swaps the entire contents of the repository for the given
// records. It is all or nothing: on a duplicate key or an invalid record
// in items the repository keeps its previous contents. Records are held
// to the same Validator bar as Add, so a restored snapshot cannot carry
// records a plain insert would reject. Used by the persistence adapter
// to restore a snapshot.
func (r *Repository[T]) Replace(items []T) error {
	next := btree.NewNonConcurrent(byPrimaryKeys[T])
	for _, item := range items {
		if err := validate(item); err != nil {
			return err
		}

		ent := newEntry(item)
		if existing := next.Set(ent); existing != nil {
			return errors.Wrapf(ErrKeyAlreadyExists, "key %d occurs more than once", ent.key)
		}
	}

	r.pks = next
	return nil
}

// FlushAll removes every record.
func (r *Repository[T]) FlushAll() {
	r.pks = btree.NewNonConcurrent(byPrimaryKeys[T])
}

func (r *Repository[T]) findByKey(key int64) (*entry[T], error) {
	found := r.pks.Get(&entry[T]{key: key})
	if found == nil {
		return nil, errors.Wrapf(ErrKeyDoesNotExist, "key %d", key)
	}

	ent, ok := found.(*entry[T])
	if !ok {
		panic(castPanic)
	}

	return ent, nil
}
