package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"railsim/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrInvalidMagic       = errors.New("invalid magic")
	ErrUnsupportedVersion = errors.New("unsupported version")
)

// Заголовку не доверяем: больше этого заранее не выделяем, дальше растет append.
const maxPrealloc int32 = 1024

func (s *JournalService) Load(path string) (*domain.Journal, error) {
	return LoadJournal(path)
}

// LoadJournal читает журнал из файла.
func LoadJournal(path string) (*domain.Journal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(bufio.NewReader(f))
}

func readBinary(r io.Reader) (*domain.Journal, error) {
	// 1. Читаем заголовок целиком
	var header JournalFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, header.Version, Version1)
	}
	if header.CollisionCount < 0 {
		return nil, fmt.Errorf("negative collision count: %d", header.CollisionCount)
	}

	j := &domain.Journal{
		RunID:        uuid.UUID(header.RunID),
		Timestamp:    header.Timestamp,
		Rows:         int(header.Rows),
		Cols:         int(header.Cols),
		InitialCarts: int(header.InitialCarts),
		Ticks:        int(header.Ticks),
		Collisions:   make([]domain.Collision, 0, min(header.CollisionCount, maxPrealloc)),
	}
	if header.HasSurvivor != 0 {
		j.Survivor = &domain.Position{X: int(header.SurvivorX), Y: int(header.SurvivorY)}
	}

	// 2. Столкновения
	for i := 0; i < int(header.CollisionCount); i++ {
		var rec CollisionRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to read collision %d: %w", i, err)
		}
		j.Collisions = append(j.Collisions, domain.Collision{
			Tick:   int(rec.Tick),
			Pos:    domain.Position{X: int(rec.X), Y: int(rec.Y)},
			Moving: domain.CartID(rec.Moving),
			Struck: domain.CartID(rec.Struck),
		})
	}

	return j, nil
}
