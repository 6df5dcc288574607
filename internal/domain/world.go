package domain

// Position - координаты клетки. Начало в левом верхнем углу, X вправо, Y вниз.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Cell - клетка сетки. Отсутствующая клетка (nil) означает "нет рельсов".
// Клетка с вагонеткой всегда имеет тип сегмента.
type Cell struct {
	Track TrackType
	Cart  *Cart
}

// Grid - рельсовая сеть и вагонетки на ней.
// Строки могут быть разной длины: короткая строка просто не содержит рельсов справа.
type Grid struct {
	// Rows[y][x]; nil - пустая клетка (пробел во входных данных)
	Rows [][]*Cell

	// Кэш количества живых вагонеток. Меняется только через TakeCart/PlaceCart.
	carts int
}
