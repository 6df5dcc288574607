package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_TakePlaceCart(t *testing.T) {
	g, err := ParseGrid("->-\n")
	require.NoError(t, err)
	require.Equal(t, 1, g.CountCarts())

	// Test Take
	cart := g.TakeCart(1, 0)
	require.NotNil(t, cart)
	assert.Equal(t, DirRight, cart.Direction)
	assert.Equal(t, CartID(1), cart.ID)
	assert.Equal(t, 0, g.CountCarts())
	assert.Nil(t, g.TakeCart(1, 0), "cell should be empty after take")

	// Test Place
	require.NoError(t, g.PlaceCart(2, 0, cart))
	assert.Equal(t, 1, g.CountCarts())
	assert.Same(t, cart, g.CellAt(2, 0).Cart)

	// Занятая клетка
	err = g.PlaceCart(2, 0, NewCart(7, DirLeft))
	assert.ErrorIs(t, err, ErrCellOccupied)
	assert.Equal(t, 1, g.CountCarts())
}

func TestGrid_PlaceCartOffRails(t *testing.T) {
	g, err := ParseGrid("- -\n")
	require.NoError(t, err)

	tests := []struct {
		name string
		x, y int
	}{
		{"space", 1, 0},
		{"past row end", 3, 0},
		{"negative x", -1, 0},
		{"below last row", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.PlaceCart(tt.x, tt.y, NewCart(1, DirRight))
			require.ErrorIs(t, err, ErrOffRails)

			var inv *InvariantError
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, Position{X: tt.x, Y: tt.y}, inv.Pos)
		})
	}
	assert.Equal(t, 0, g.CountCarts())
}

func TestGrid_CellAtRaggedRows(t *testing.T) {
	// Вторая строка короче первой: хвост ведет себя как пробелы.
	g, err := ParseGrid("/--\\\n|\n")
	require.NoError(t, err)

	rows, cols := g.Dimensions()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 4, cols)

	assert.NotNil(t, g.CellAt(0, 1))
	for x := 1; x < cols+2; x++ {
		assert.Nil(t, g.CellAt(x, 1), "x=%d", x)
	}
	assert.Nil(t, g.CellAt(0, -1))
	assert.Nil(t, g.TakeCart(3, 1))
}

func TestGrid_Clone(t *testing.T) {
	g, err := ParseGrid("-><-\n")
	require.NoError(t, err)

	clone := g.Clone()
	moved := clone.TakeCart(1, 0)
	require.NotNil(t, moved)
	moved.Turns = 5

	assert.Equal(t, 2, g.CountCarts())
	assert.Equal(t, 1, clone.CountCarts())
	assert.Equal(t, uint(0), g.CellAt(1, 0).Cart.Turns)
	assert.Equal(t, "-><-\n", g.String())
	assert.Equal(t, "--<-\n", clone.String())
}

func TestGrid_Carts(t *testing.T) {
	g, err := ParseGrid("  v\n>-+\n  ^\n")
	require.NoError(t, err)

	assert.Equal(t, []Position{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 2}}, g.Carts())
}
