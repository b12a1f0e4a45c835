package frame

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// RowHash вычисляет xxh3 (64-bit) хеш строки i.
// Кодирование каноническое: тип, флаг NULL и значение каждой ячейки,
// время - в наносекундах UTC, поэтому зона не влияет на хеш.
func (f *Frame) RowHash(i int) uint64 {
	h := xxh3.New()
	var buf [8]byte

	for _, c := range f.Columns {
		v := c.Values[i]
		h.WriteString(string(v.Kind))
		if v.Null {
			h.Write([]byte{0})
			continue
		}
		h.Write([]byte{1})

		switch v.Kind {
		case KindInteger:
			binary.BigEndian.PutUint64(buf[:], uint64(v.Int))
			h.Write(buf[:])
		case KindFloat:
			binary.BigEndian.PutUint64(buf[:], math.Float64bits(v.Float))
			h.Write(buf[:])
		case KindBoolean:
			if v.Bool {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		case KindTimestamp:
			binary.BigEndian.PutUint64(buf[:], uint64(v.Time.UTC().UnixNano()))
			h.Write(buf[:])
		default:
			binary.BigEndian.PutUint64(buf[:], uint64(len(v.Text)))
			h.Write(buf[:])
			h.WriteString(v.Text)
		}
	}

	return h.Sum64()
}

// RowCounts возвращает мультимножество строк: хеш строки → количество повторов
func (f *Frame) RowCounts() map[uint64]int {
	counts := make(map[uint64]int, f.NumRows())
	for i := 0; i < f.NumRows(); i++ {
		counts[f.RowHash(i)]++
	}
	return counts
}

// SameShape проверяет совпадение имен и типов колонок (порядок значим)
func SameShape(a, b *Frame) bool {
	if a.NumColumns() != b.NumColumns() {
		return false
	}
	for i := range a.Columns {
		if a.Columns[i].Name != b.Columns[i].Name || a.Columns[i].Kind != b.Columns[i].Kind {
			return false
		}
	}
	return true
}

// MultisetEqual проверяет что два Frame имеют одинаковые колонки
// и одинаковое мультимножество строк. Порядок строк не учитывается:
// БД не гарантирует порядок при SELECT * без ORDER BY.
func MultisetEqual(a, b *Frame) bool {
	if !SameShape(a, b) || a.NumRows() != b.NumRows() {
		return false
	}

	counts := a.RowCounts()
	for i := 0; i < b.NumRows(); i++ {
		h := b.RowHash(i)
		if counts[h] == 0 {
			return false
		}
		counts[h]--
	}
	return true
}

// MultisetContains проверяет что все строки sub (с учетом кратности)
// присутствуют в super. Колонки должны совпадать.
func MultisetContains(super, sub *Frame) bool {
	if !SameShape(super, sub) || super.NumRows() < sub.NumRows() {
		return false
	}

	counts := super.RowCounts()
	for i := 0; i < sub.NumRows(); i++ {
		h := sub.RowHash(i)
		if counts[h] == 0 {
			return false
		}
		counts[h]--
	}
	return true
}
