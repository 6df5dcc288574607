package domain

import "strings"

// String возвращает текстовый снимок сетки: вагонетка рисуется поверх сегмента,
// пустые клетки - пробелами, каждая строка завершается переводом строки.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.Rows {
		for _, cell := range row {
			switch {
			case cell == nil:
				sb.WriteByte(' ')
			case cell.Cart != nil:
				sb.WriteByte(cell.Cart.Direction.Symbol())
			default:
				sb.WriteByte(cell.Track.Symbol())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
