// Package inventory carries the canonical record type stored in a
// stockpile repository plus a reader for line-oriented item files.
package inventory

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/denismitr/stockpile"
)

// Item is a single warehouse position. Treat values as immutable:
// derive changed copies with WithUnits instead of assigning to fields.
type Item struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Quantity  int64     `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewItem builds a validated item. The id must be positive, the name
// non-blank and the quantity non-negative; violations are reported as
// stockpile.ErrInvalidValue.
func NewItem(id int64, name string, quantity int64) (Item, error) {
	item := Item{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Quantity:  quantity,
		UpdatedAt: time.Now().UTC(),
	}

	if err := item.Validate(); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Key implements stockpile.Keyed.
func (i Item) Key() int64 {
	return i.ID
}

// Units implements stockpile.Quantified.
func (i Item) Units() int64 {
	return i.Quantity
}

// WithUnits returns a copy of the item carrying n units.
func (i Item) WithUnits(n int64) Item {
	i.Quantity = n
	return i
}

// Validate implements stockpile.Validator, so repository Add rejects
// malformed items even when they bypass NewItem.
func (i Item) Validate() error {
	if i.ID <= 0 {
		return errors.Wrapf(stockpile.ErrInvalidValue, "item id must be positive, got %d", i.ID)
	}

	if strings.TrimSpace(i.Name) == "" {
		return errors.Wrap(stockpile.ErrInvalidValue, "item name cannot be blank")
	}

	if i.Quantity < 0 {
		return errors.Wrapf(stockpile.ErrInvalidValue, "item quantity cannot be negative, got %d", i.Quantity)
	}

	return nil
}
