package stockpile

import (
	"math"

	"github.com/pkg/errors"
)

// UpdateUnits sets the units of the record stored under key to n.
// Negative values fail with ErrInvalidValue, an absent key with
// ErrKeyDoesNotExist; in both cases the stored record is untouched.
func UpdateUnits[T Quantified[T]](r *Repository[T], key int64, n int64) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidValue, "units cannot be negative, got %d", n)
	}

	ent, err := r.findByKey(key)
	if err != nil {
		return err
	}

	ent.record = ent.record.WithUnits(n)
	return nil
}

// IncrementUnits adjusts the units of the record stored under key by
// delta, which may be negative. The new value is computed and verified
// before the record is touched: on ErrArithmeticOverflow or a result
// below zero (ErrInvalidValue) the stored units remain exactly as they
// were.
func IncrementUnits[T Quantified[T]](r *Repository[T], key int64, delta int64) error {
	ent, err := r.findByKey(key)
	if err != nil {
		return err
	}

	next, err := addUnits(ent.record.Units(), delta)
	if err != nil {
		return err
	}

	if next < 0 {
		return errors.Wrapf(ErrInvalidValue, "units cannot drop below zero, got %d", next)
	}

	ent.record = ent.record.WithUnits(next)
	return nil
}

func addUnits(current, delta int64) (int64, error) {
	if delta > 0 && current > math.MaxInt64-delta {
		return 0, errors.Wrapf(ErrArithmeticOverflow, "%d + %d exceeds max units", current, delta)
	}

	if delta < 0 && current < math.MinInt64-delta {
		return 0, errors.Wrapf(ErrArithmeticOverflow, "%d + %d exceeds min units", current, delta)
	}

	return current + delta, nil
}
