package inventory_test

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/stockpile/inventory"
)

func TestReadItems(t *testing.T) {
	t.Run("valid lines with blanks and padding", func(t *testing.T) {
		in := "201,Rice,50\n\n 202 , Milk , 80 \n305,Flour,0\n"

		items, err := inventory.ReadItems(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, items, 3)

		assert.Equal(t, int64(201), items[0].ID)
		assert.Equal(t, "Milk", items[1].Name)
		assert.Equal(t, int64(80), items[1].Quantity)
		assert.Equal(t, int64(0), items[2].Quantity)
	})

	t.Run("empty input yields no items", func(t *testing.T) {
		items, err := inventory.ReadItems(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	tt := []struct {
		name      string
		in        string
		wantLine  int
		wantField string
	}{
		{name: "missing field", in: "201,Rice,50\n202,Milk\n", wantLine: 2, wantField: "line"},
		{name: "too many fields", in: "201,Rice,50,extra\n", wantLine: 1, wantField: "line"},
		{name: "malformed id", in: "abc,Rice,50\n", wantLine: 1, wantField: "id"},
		{name: "malformed quantity", in: "201,Rice,many\n", wantLine: 1, wantField: "quantity"},
		{name: "blank name", in: "201,Rice,50\n202, ,80\n", wantLine: 2, wantField: "name"},
		{name: "negative quantity", in: "201,Rice,-5\n", wantLine: 1, wantField: "quantity"},
		{name: "non positive id", in: "0,Rice,5\n", wantLine: 1, wantField: "id"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			items, err := inventory.ReadItems(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.Nil(t, items, "a failed read has no partial results")

			var parseErr *inventory.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tc.wantLine, parseErr.Line)
			assert.Equal(t, tc.wantField, parseErr.Field)
		})
	}
}

func TestReadItems_OverlongLine(t *testing.T) {
	in := "201,Rice,50\n202," + strings.Repeat("M", 1<<20+1) + ",80\n"

	items, err := inventory.ReadItems(strings.NewReader(in))
	require.Error(t, err)
	assert.Nil(t, items)

	var parseErr *inventory.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
	assert.Equal(t, "line", parseErr.Field)
	assert.True(t, errors.Is(err, bufio.ErrTooLong))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte("201,Rice,50\n202,Milk,80\n"), 0666))

	first, err := inventory.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, first, 2)

	// the sequence restarts on every call
	second, err := inventory.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, first[0].ID, second[0].ID)

	_, err = inventory.ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
