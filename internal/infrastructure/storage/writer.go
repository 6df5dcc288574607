package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"railsim/internal/domain"
)

const (
	MagicHeader string = `RSCJ` // 4 байта: RailSim Collision Journal
	Version1    uint32 = 1

	// FileExt - расширение файлов журнала
	FileExt = ".rscj"
)

// JournalFileHeader - точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: тут только массивы и числа.
type JournalFileHeader struct {
	Magic          [4]byte  // 4 байта
	Version        uint32   // 4 байта
	RunID          [16]byte // 16 байт, UUID
	Timestamp      int64    // 8 байт
	Rows           int32    // 4 байта
	Cols           int32    // 4 байта
	InitialCarts   int32    // 4 байта
	Ticks          int32    // 4 байта
	HasSurvivor    uint8    // 1 байт
	_              [3]byte  // выравнивание
	SurvivorX      int32    // 4 байта
	SurvivorY      int32    // 4 байта
	CollisionCount int32    // 4 байта
}

// CollisionRecord - одна запись о столкновении, фиксированного размера.
type CollisionRecord struct {
	Tick   int32  // 4
	X      int32  // 4
	Y      int32  // 4
	Moving uint32 // 4
	Struck uint32 // 4
}

type JournalService struct {
	SaveDir string
}

func NewJournalService(dir string) (*JournalService, error) {
	// Создаем папку если нет
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}
	return &JournalService{SaveDir: dir}, nil
}

// Save пишет журнал в SaveDir и возвращает путь к файлу.
func (s *JournalService) Save(j *domain.Journal) (string, error) {
	filename := fmt.Sprintf("journal_%d_%s%s", j.Timestamp, j.RunID, FileExt)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeBinary(w, j); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return path, f.Close()
}

func writeBinary(w io.Writer, j *domain.Journal) error {
	for _, v := range []int{j.Rows, j.Cols, j.InitialCarts, j.Ticks, len(j.Collisions)} {
		if v < 0 || v > math.MaxInt32 {
			return fmt.Errorf("journal value out of range: %d", v)
		}
	}

	// 1. Заголовок
	header := JournalFileHeader{
		Version:        Version1,
		RunID:          j.RunID,
		Timestamp:      j.Timestamp,
		Rows:           int32(j.Rows),
		Cols:           int32(j.Cols),
		InitialCarts:   int32(j.InitialCarts),
		Ticks:          int32(j.Ticks),
		CollisionCount: int32(len(j.Collisions)),
	}
	copy(header.Magic[:], MagicHeader)
	if j.Survivor != nil {
		header.HasSurvivor = 1
		header.SurvivorX = int32(j.Survivor.X)
		header.SurvivorY = int32(j.Survivor.Y)
	}

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Столкновения
	for _, c := range j.Collisions {
		rec := CollisionRecord{
			Tick:   int32(c.Tick),
			X:      int32(c.Pos.X),
			Y:      int32(c.Pos.Y),
			Moving: uint32(c.Moving),
			Struck: uint32(c.Struck),
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("failed to write collision: %w", err)
		}
	}

	return nil
}
