package domain

// Dimensions возвращает количество строк и длину самой длинной строки.
func (g *Grid) Dimensions() (rows, cols int) {
	rows = len(g.Rows)
	for _, row := range g.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return rows, cols
}

// CellAt возвращает клетку или nil, если там нет рельсов.
// Выход за границы (в том числе за конец короткой строки) - не ошибка.
func (g *Grid) CellAt(x, y int) *Cell {
	if y < 0 || y >= len(g.Rows) {
		return nil
	}
	row := g.Rows[y]
	if x < 0 || x >= len(row) {
		return nil
	}
	return row[x]
}

// TakeCart снимает вагонетку с клетки и возвращает ее (или nil).
func (g *Grid) TakeCart(x, y int) *Cart {
	cell := g.CellAt(x, y)
	if cell == nil || cell.Cart == nil {
		return nil
	}
	cart := cell.Cart
	cell.Cart = nil
	g.carts--
	return cart
}

// PlaceCart ставит вагонетку на клетку.
// Клетка без рельсов - нарушение инварианта (вагонетка ушла с путей).
// Клетка должна быть свободна: столкновения разбирает движок до вызова.
func (g *Grid) PlaceCart(x, y int, cart *Cart) error {
	cell := g.CellAt(x, y)
	if cell == nil {
		return &InvariantError{Pos: Position{X: x, Y: y}, Err: ErrOffRails}
	}
	if cell.Cart != nil {
		return &InvariantError{Pos: Position{X: x, Y: y}, Err: ErrCellOccupied}
	}
	cell.Cart = cart
	g.carts++
	return nil
}

// CountCarts - число живых вагонеток.
func (g *Grid) CountCarts() int {
	return g.carts
}

// ForEachCell обходит непустые клетки в порядке чтения:
// по возрастанию Y, внутри строки по возрастанию X.
// Если fn вернет false, обход прекращается.
func (g *Grid) ForEachCell(fn func(pos Position, cell *Cell) bool) {
	for y, row := range g.Rows {
		for x, cell := range row {
			if cell == nil {
				continue
			}
			if !fn(Position{X: x, Y: y}, cell) {
				return
			}
		}
	}
}

// Carts возвращает позиции живых вагонеток в порядке чтения.
func (g *Grid) Carts() []Position {
	positions := make([]Position, 0, g.carts)
	g.ForEachCell(func(pos Position, cell *Cell) bool {
		if cell.Cart != nil {
			positions = append(positions, pos)
		}
		return true
	})
	return positions
}

// Clone делает глубокую копию сетки вместе с вагонетками.
// Сама сетка никогда не копируется неявно.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		Rows:  make([][]*Cell, len(g.Rows)),
		carts: g.carts,
	}
	for y, row := range g.Rows {
		newRow := make([]*Cell, len(row))
		for x, cell := range row {
			if cell == nil {
				continue
			}
			c := &Cell{Track: cell.Track}
			if cell.Cart != nil {
				cart := *cell.Cart
				c.Cart = &cart
			}
			newRow[x] = c
		}
		clone.Rows[y] = newRow
	}
	return clone
}
