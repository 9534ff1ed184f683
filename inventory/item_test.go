package inventory_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/stockpile"
	"github.com/denismitr/stockpile/inventory"
)

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := inventory.NewItem(201, "  Rice ", 50)
		require.NoError(t, err)
		assert.Equal(t, int64(201), item.Key())
		assert.Equal(t, "Rice", item.Name)
		assert.Equal(t, int64(50), item.Units())
		assert.False(t, item.UpdatedAt.IsZero())
	})

	tt := []struct {
		name     string
		id       int64
		itemName string
		quantity int64
	}{
		{name: "zero id", id: 0, itemName: "Rice", quantity: 1},
		{name: "negative id", id: -3, itemName: "Rice", quantity: 1},
		{name: "blank name", id: 201, itemName: "   ", quantity: 1},
		{name: "negative quantity", id: 201, itemName: "Rice", quantity: -1},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := inventory.NewItem(tc.id, tc.itemName, tc.quantity)
			require.Error(t, err)
			assert.True(t, errors.Is(err, stockpile.ErrInvalidValue))
		})
	}
}

func TestItem_WithUnits(t *testing.T) {
	item, err := inventory.NewItem(201, "Rice", 50)
	require.NoError(t, err)

	updated := item.WithUnits(95)
	assert.Equal(t, int64(95), updated.Units())
	assert.Equal(t, int64(50), item.Units(), "the receiver must stay untouched")
	assert.Equal(t, item.ID, updated.ID)
	assert.Equal(t, item.Name, updated.Name)
}
