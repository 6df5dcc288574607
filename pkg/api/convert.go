package api

import "railsim/internal/domain"

// NewPositionView переводит позицию в DTO.
func NewPositionView(p domain.Position) PositionView {
	return PositionView{X: p.X, Y: p.Y, Text: p.String()}
}

// NewCollisionView переводит столкновение в DTO. Carts: [стоявшая, въехавшая].
func NewCollisionView(c domain.Collision) CollisionView {
	return CollisionView{
		Tick:  c.Tick,
		At:    NewPositionView(c.Pos),
		Carts: [2]uint32{uint32(c.Struck), uint32(c.Moving)},
	}
}
