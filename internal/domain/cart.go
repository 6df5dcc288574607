package domain

import "fmt"

// CartID - порядковый номер вагонетки в порядке чтения карты (с единицы).
type CartID uint32

// NilCartID - "нет вагонетки".
const NilCartID CartID = 0

func (id CartID) String() string {
	return fmt.Sprintf("cart#%d", uint32(id))
}

// Cart - вагонетка. Принадлежит ровно одной клетке сетки.
type Cart struct {
	ID        CartID
	Direction Direction
	Turns     uint // Сколько перекрестков пройдено (определяет следующий поворот)

	// Visited - служебный флаг текущего тика, сбрасывается перед каждым проходом.
	Visited bool
}

// NewCart создает вагонетку, еще не проходившую перекрестков.
func NewCart(id CartID, dir Direction) *Cart {
	return &Cart{ID: id, Direction: dir}
}
