package domain

import "github.com/google/uuid"

// Journal - запись завершенного прогона: что было на входе и какие столкновения произошли.
// Это отчет о прогоне, а не состояние симуляции: продолжить с него нельзя.
type Journal struct {
	RunID        uuid.UUID   `json:"runId"`
	Timestamp    int64       `json:"timestamp"`
	Rows         int         `json:"rows"`
	Cols         int         `json:"cols"`
	InitialCarts int         `json:"initialCarts"`
	Ticks        int         `json:"ticks"`
	Survivor     *Position   `json:"survivor,omitempty"`
	Collisions   []Collision `json:"collisions"`
}
