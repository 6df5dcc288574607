package api

import (
	"errors"
	"fmt"
	"strconv"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p PositionView) Validate() error {
	if p.X < 0 || p.Y < 0 {
		return errors.New("position must not be negative")
	}
	if want := strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y); p.Text != want {
		return fmt.Errorf("position text %q does not match %s", p.Text, want)
	}
	return nil
}

func (c CollisionView) Validate() error {
	if c.Tick <= 0 {
		return errors.New("collision tick must be positive")
	}
	if c.Carts[0] == c.Carts[1] {
		return errors.New("a cart cannot collide with itself")
	}
	return c.At.Validate()
}

func (r RunReport) Validate() error {
	if r.RunID == "" {
		return errors.New("runId is required")
	}
	if r.FirstCollision == nil && r.LastCart == nil {
		return errors.New("report holds no results")
	}
	if r.FirstCollision != nil {
		if err := r.FirstCollision.Validate(); err != nil {
			return fmt.Errorf("firstCollision: %w", err)
		}
	}
	if r.LastCart != nil {
		if err := r.LastCart.Validate(); err != nil {
			return fmt.Errorf("lastCart: %w", err)
		}
	}
	for i, c := range r.Collisions {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("collisions[%d]: %w", i, err)
		}
	}
	return nil
}
