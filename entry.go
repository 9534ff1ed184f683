package stockpile

import "github.com/jinzhu/copier"

const castPanic = "how could a primary key item not be of type *entry"

// entry is the node stored in the primary key index. The key is extracted
// from the record once, on insert, so lookups never touch the record.
type entry[T Keyed] struct {
	key    int64
	record T
}

func newEntry[T Keyed](record T) *entry[T] {
	return &entry[T]{key: record.Key(), record: record}
}

// clone returns a detached copy of the stored record. Mutating the copy
// must never reach the repository, hence a field-wise copy instead of a
// plain assignment which would share slice and map backing arrays.
func (ent *entry[T]) clone() T {
	var cp T
	if err := copier.Copy(&cp, &ent.record); err != nil {
		panic("could not copy record: " + err.Error())
	}

	return cp
}

func byPrimaryKeys[T Keyed](a, b interface{}) bool {
	i1, ok1 := a.(*entry[T])
	i2, ok2 := b.(*entry[T])
	if !ok1 || !ok2 {
		panic(castPanic)
	}

	return i1.key < i2.key
}
