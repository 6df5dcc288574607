package domain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Максимальная длина одной строки раскладки.
const maxLineLength = 1 << 20

// ParseGrid разбирает текстовую раскладку.
func ParseGrid(layout string) (*Grid, error) {
	return ReadGrid(strings.NewReader(layout))
}

// ReadGrid читает раскладку построчно.
//
//	/ \ - | +   - сегменты рельсов
//	< > ^ v     - вагонетка (сегмент под ней выводится из направления)
//	пробел      - нет рельсов
//
// Любой другой символ - *ParseError. Раскладка никогда не "чинится" молча.
func ReadGrid(r io.Reader) (*Grid, error) {
	g := &Grid{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	var nextID CartID = 1
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")

		row := make([]*Cell, 0, len(text))
		col := 0
		for _, c := range text {
			col++
			cell, err := parseCell(c)
			if err != nil {
				return nil, &ParseError{Line: line, Column: col, Char: c}
			}
			if cell != nil && cell.Cart != nil {
				cell.Cart.ID = nextID
				nextID++
				g.carts++
			}
			row = append(row, cell)
		}
		g.Rows = append(g.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}

	return g, nil
}

func parseCell(c rune) (*Cell, error) {
	if c == ' ' {
		return nil, nil
	}
	if c > 0x7F {
		return nil, ErrUnknownSymbol
	}
	if track, ok := trackFromSymbol(byte(c)); ok {
		return &Cell{Track: track}, nil
	}
	if dir, ok := directionFromSymbol(byte(c)); ok {
		return &Cell{
			Track: trackUnderCart(dir),
			Cart:  NewCart(NilCartID, dir),
		}, nil
	}
	return nil, ErrUnknownSymbol
}
