package systems

import (
	"fmt"

	"railsim/internal/domain"
)

// transition - строка таблицы переходов: куда поедет вагонетка после сегмента.
type transition struct {
	Out domain.Direction
	OK  bool // false - въезд в сегмент с этого направления невозможен
}

// transitions[track][incoming]. Перекресток здесь не описан: он зависит от счетчика поворотов.
var transitions = buildTransitions()

func buildTransitions() [domain.TrackTypeCount][4]transition {
	var t [domain.TrackTypeCount][4]transition

	set := func(track domain.TrackType, in, out domain.Direction) {
		t[track][in] = transition{Out: out, OK: true}
	}

	// '/'
	set(domain.TrackCurveForward, domain.DirUp, domain.DirRight)
	set(domain.TrackCurveForward, domain.DirDown, domain.DirLeft)
	set(domain.TrackCurveForward, domain.DirLeft, domain.DirDown)
	set(domain.TrackCurveForward, domain.DirRight, domain.DirUp)

	// '\'
	set(domain.TrackCurveBackward, domain.DirUp, domain.DirLeft)
	set(domain.TrackCurveBackward, domain.DirDown, domain.DirRight)
	set(domain.TrackCurveBackward, domain.DirLeft, domain.DirUp)
	set(domain.TrackCurveBackward, domain.DirRight, domain.DirDown)

	// Прямые пропускают только вдоль себя
	set(domain.TrackHorizontal, domain.DirLeft, domain.DirLeft)
	set(domain.TrackHorizontal, domain.DirRight, domain.DirRight)
	set(domain.TrackVertical, domain.DirUp, domain.DirUp)
	set(domain.TrackVertical, domain.DirDown, domain.DirDown)

	return t
}

// IntersectionTurn выбирает направление на перекрестке по номеру прохода (с единицы):
// 1 - налево, 2 - прямо, 3 - направо, дальше по кругу.
func IntersectionTurn(incoming domain.Direction, pass uint) domain.Direction {
	switch pass % 3 {
	case 1:
		return incoming.TurnLeft()
	case 2:
		return incoming
	default:
		return incoming.TurnRight()
	}
}

// Resolve вычисляет новое направление и приращение счетчика перекрестков.
// Чистая функция: ничего не меняет.
func Resolve(track domain.TrackType, incoming domain.Direction, turns uint) (domain.Direction, uint, error) {
	if track == domain.TrackIntersection {
		return IntersectionTurn(incoming, turns+1), 1, nil
	}

	if int(track) >= len(transitions) || int(incoming) >= len(transitions[track]) {
		return incoming, 0, fmt.Errorf("%w: unknown track %v or direction %v", domain.ErrImpossibleMovement, track, incoming)
	}

	tr := transitions[track][incoming]
	if !tr.OK {
		return incoming, 0, fmt.Errorf("%w: moving %v across %v track", domain.ErrImpossibleMovement, incoming, track)
	}
	return tr.Out, 0, nil
}

// MovementResult - результат вычисления движения
type MovementResult struct {
	Target    domain.Position
	Direction domain.Direction
	Turns     uint
}

// CalculateMove вычисляет, куда поедет вагонетка из клетки pos. Не меняет состояние мира!
func CalculateMove(pos domain.Position, track domain.TrackType, cart *domain.Cart) (MovementResult, error) {
	dir, delta, err := Resolve(track, cart.Direction, cart.Turns)
	if err != nil {
		return MovementResult{}, &domain.InvariantError{Pos: pos, Err: err}
	}

	return MovementResult{
		Target:    pos.Step(dir),
		Direction: dir,
		Turns:     cart.Turns + delta,
	}, nil
}

// Apply переносит результат в вагонетку.
func (r MovementResult) Apply(cart *domain.Cart) {
	cart.Direction = r.Direction
	cart.Turns = r.Turns
}
