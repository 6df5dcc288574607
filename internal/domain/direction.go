package domain

import "fmt"

// Direction - направление движения вагонетки.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Порядок констант важен: поворот направо = +1 по кругу, налево = -1.
const directionCount = 4

// Delta возвращает единичный вектор смещения (ось Y направлена вниз)
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// TurnLeft поворачивает против часовой стрелки относительно текущего хода.
func (d Direction) TurnLeft() Direction {
	return (d + directionCount - 1) % directionCount
}

// TurnRight поворачивает по часовой стрелке.
func (d Direction) TurnRight() Direction {
	return (d + 1) % directionCount
}

// IsHorizontal true для Left/Right
func (d Direction) IsHorizontal() bool {
	return d == DirLeft || d == DirRight
}

// Symbol - символ вагонетки в текстовой раскладке.
func (d Direction) Symbol() byte {
	switch d {
	case DirUp:
		return '^'
	case DirDown:
		return 'v'
	case DirLeft:
		return '<'
	case DirRight:
		return '>'
	}
	return '?'
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// directionFromSymbol - обратное к Symbol.
func directionFromSymbol(c byte) (Direction, bool) {
	switch c {
	case '^':
		return DirUp, true
	case 'v':
		return DirDown, true
	case '<':
		return DirLeft, true
	case '>':
		return DirRight, true
	}
	return 0, false
}
