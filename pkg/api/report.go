package api

// RunReport - итог прогона в виде JSON для внешних потребителей (-json).
type RunReport struct {
	// RunID совпадает с run_id в логах и с именем файла журнала.
	RunID string `json:"runId"`

	// Grid размеры разобранной раскладки.
	Grid GridMeta `json:"grid"`

	// InitialCarts сколько вагонеток было на старте.
	InitialCarts int `json:"initialCarts"`

	// FirstCollision место первого столкновения (nil, если запрос не выполнялся).
	FirstCollision *CollisionView `json:"firstCollision,omitempty"`

	// LastCart позиция последней уцелевшей вагонетки.
	LastCart *PositionView `json:"lastCart,omitempty"`

	// Ticks сколько тиков понадобилось самому длинному запросу.
	Ticks int `json:"ticks"`

	// Collisions вся история столкновений этого запроса.
	Collisions []CollisionView `json:"collisions"`

	// Errors ошибки запросов, которые не удались (остальные результаты при этом валидны).
	Errors []string `json:"errors,omitempty"`

	// Snapshot текстовый снимок сетки в конце прогона (по флагу -snapshot).
	Snapshot string `json:"snapshot,omitempty"`
}

// GridMeta размеры сетки: число строк и длина самой длинной строки.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// PositionView координаты клетки. Text - в формате "x,y".
type PositionView struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Text string `json:"text"`
}

// CollisionView одно столкновение.
type CollisionView struct {
	Tick  int          `json:"tick"`
	At    PositionView `json:"at"`
	Carts [2]uint32    `json:"carts"`
}
