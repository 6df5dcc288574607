package domain

import "strconv"

// Shift возвращает новую позицию со смещением
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step - соседняя клетка в направлении d.
func (p Position) Step(d Direction) Position {
	return p.Shift(d.Delta())
}

// String печатает позицию в формате "x,y"
func (p Position) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}
