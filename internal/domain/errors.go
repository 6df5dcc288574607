package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSymbol - во входной раскладке встретился неизвестный символ.
	ErrUnknownSymbol = errors.New("unknown layout symbol")
	// ErrOffRails - вагонетку попытались поставить на клетку без рельсов.
	ErrOffRails = errors.New("cart moved off the rails")
	// ErrCellOccupied - попытка поставить вагонетку на занятую клетку.
	ErrCellOccupied = errors.New("cell already holds a cart")
	// ErrCartCountDrift - после тика число вагонеток не сходится со столкновениями.
	ErrCartCountDrift = errors.New("cart count drifted")
	// ErrImpossibleMovement - вагонетка вошла в прямой сегмент поперек.
	ErrImpossibleMovement = errors.New("impossible movement")
)

// ParseError описывает ошибку разбора раскладки.
type ParseError struct {
	Line   int // с единицы
	Column int // с единицы
	Char   rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %v %q", e.Line, e.Column, ErrUnknownSymbol, e.Char)
}

func (e *ParseError) Unwrap() error {
	return ErrUnknownSymbol
}

// InvariantError - фатальное нарушение инварианта симуляции в конкретной клетке.
// Не исправляется и не повторяется: это ошибка в раскладке или в правилах движения.
type InvariantError struct {
	Pos Position
	Err error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation at %s: %v", e.Pos, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}
