package domain

import "fmt"

// TrackType - тип рельсового сегмента в клетке. Задается один раз при разборе карты.
type TrackType uint8

const (
	TrackCurveForward  TrackType = iota // '/'
	TrackCurveBackward                  // '\'
	TrackHorizontal                     // '-'
	TrackVertical                       // '|'
	TrackIntersection                   // '+'
)

// TrackTypeCount - количество типов сегментов (размерность таблиц переходов).
const TrackTypeCount = 5

// Symbol возвращает символ сегмента в текстовой раскладке
func (t TrackType) Symbol() byte {
	switch t {
	case TrackCurveForward:
		return '/'
	case TrackCurveBackward:
		return '\\'
	case TrackHorizontal:
		return '-'
	case TrackVertical:
		return '|'
	case TrackIntersection:
		return '+'
	}
	return '?'
}

func (t TrackType) String() string {
	switch t {
	case TrackCurveForward:
		return "curve-forward"
	case TrackCurveBackward:
		return "curve-backward"
	case TrackHorizontal:
		return "horizontal"
	case TrackVertical:
		return "vertical"
	case TrackIntersection:
		return "intersection"
	}
	return fmt.Sprintf("TrackType(%d)", uint8(t))
}

func trackFromSymbol(c byte) (TrackType, bool) {
	switch c {
	case '/':
		return TrackCurveForward, true
	case '\\':
		return TrackCurveBackward, true
	case '-':
		return TrackHorizontal, true
	case '|':
		return TrackVertical, true
	case '+':
		return TrackIntersection, true
	}
	return 0, false
}

// trackUnderCart выводит тип сегмента под вагонеткой из ее начального направления.
func trackUnderCart(d Direction) TrackType {
	if d.IsHorizontal() {
		return TrackHorizontal
	}
	return TrackVertical
}
