package storage

import (
	"fmt"
	"io"
	"os"

	"railsim/internal/domain"
)

// StdinPath - путь, означающий стандартный ввод.
const StdinPath = "-"

// LoadLayout читает раскладку из файла или из stdin (путь "" или "-").
func LoadLayout(path string) (*domain.Grid, error) {
	if path == "" || path == StdinPath {
		return readLayout(os.Stdin, "stdin")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readLayout(f, path)
}

func readLayout(r io.Reader, name string) (*domain.Grid, error) {
	grid, err := domain.ReadGrid(r)
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", name, err)
	}
	return grid, nil
}
