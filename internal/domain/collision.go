package domain

// Collision - столкновение двух вагонеток.
// Pos - клетка, в которую въехала вторая вагонетка.
type Collision struct {
	Tick   int      `json:"tick"`
	Pos    Position `json:"pos"`
	Moving CartID   `json:"moving"` // та, что въехала
	Struck CartID   `json:"struck"` // та, что стояла в клетке
}
