package stockpile

import "github.com/pkg/errors"

// Keyed is the capability every stored record must provide: a unique
// integer primary key. The repository never interprets any other field.
type Keyed interface {
	Key() int64
}

// Quantified is the capability required by the quantity helpers. A record
// exposes its current units and produces a copy of itself carrying a new
// units value. WithUnits must not mutate the receiver.
type Quantified[T any] interface {
	Keyed
	Units() int64
	WithUnits(n int64) T
}

// Validator may be implemented by a record type to have Add and Replace
// verify it before insertion. Validation failures are reported as
// ErrInvalidValue.
type Validator interface {
	Validate() error
}

func validate[T any](item T) error {
	v, ok := any(item).(Validator)
	if !ok {
		return nil
	}

	if err := v.Validate(); err != nil {
		return errors.Wrap(ErrInvalidValue, err.Error())
	}

	return nil
}
