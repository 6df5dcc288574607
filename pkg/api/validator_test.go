package api

import (
	"testing"

	"railsim/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRunReport_Validate(t *testing.T) {
	valid := func() RunReport {
		first := NewCollisionView(domain.Collision{Tick: 14, Pos: domain.Position{X: 7, Y: 3}, Moving: 2, Struck: 1})
		last := NewPositionView(domain.Position{X: 6, Y: 4})
		return RunReport{
			RunID:          "run",
			FirstCollision: &first,
			LastCart:       &last,
			Collisions:     []CollisionView{first},
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *RunReport)
		wantErr bool
	}{
		{"valid", func(r *RunReport) {}, false},
		{"only last cart", func(r *RunReport) { r.FirstCollision = nil }, false},
		{"missing run id", func(r *RunReport) { r.RunID = "" }, true},
		{"no results", func(r *RunReport) { r.FirstCollision, r.LastCart = nil, nil }, true},
		{"stale text", func(r *RunReport) { r.LastCart.Text = "1,1" }, true},
		{"negative position", func(r *RunReport) { r.LastCart.X = -1 }, true},
		{"self collision", func(r *RunReport) { r.Collisions[0].Carts = [2]uint32{3, 3} }, true},
		{"zero tick", func(r *RunReport) { r.FirstCollision.Tick = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewCollisionView(t *testing.T) {
	v := NewCollisionView(domain.Collision{Tick: 3, Pos: domain.Position{X: 2, Y: 0}, Moving: 1, Struck: 2})

	assert.Equal(t, "2,0", v.At.Text)
	assert.Equal(t, [2]uint32{2, 1}, v.Carts)
	assert.Equal(t, 3, v.Tick)
}
