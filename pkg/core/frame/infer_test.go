package frame

import (
	"errors"
	"testing"
)

func TestInferKind(t *testing.T) {
	tests := []struct {
		name     string
		raw      []string
		expected Kind
	}{
		{"integers", []string{"1", "2", "-3"}, KindInteger},
		{"integers with blanks", []string{"1", "", " 2 "}, KindInteger},
		{"zero and one stay integer", []string{"0", "1", "1"}, KindInteger},
		{"mixed int and float", []string{"1", "2.5"}, KindFloat},
		{"booleans", []string{"true", "False", "TRUE"}, KindBoolean},
		{"timestamps", []string{"2024-01-01", "2024-01-02 10:00:00"}, KindTimestamp},
		{"mixed bool and int", []string{"true", "1"}, KindText},
		{"text", []string{"alice", "bob"}, KindText},
		{"nan and inf words", []string{"Nan", "Inf"}, KindText},
		{"float with infinity", []string{"1.5", "Infinity"}, KindText},
		{"float with nan", []string{"NaN", "2"}, KindText},
		{"all empty", []string{"", " "}, KindText},
		{"no values", nil, KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferKind(tt.raw); got != tt.expected {
				t.Errorf("InferKind(%v) = %s, want %s", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestFromRecordsInfersKinds(t *testing.T) {
	header := []string{"name", "points", "ratio", "passed", "at"}
	records := [][]string{
		{"alice", "10", "0.5", "true", "2024-01-01 10:00:00"},
		{"bob", "20", "1", "false", "2024-01-02 11:00:00"},
		{"carol", "30"}, // короткая запись: недостающие ячейки пустые
	}

	f, err := FromRecords(header, records, nil)
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}

	expected := []Kind{KindText, KindInteger, KindFloat, KindBoolean, KindTimestamp}
	for i, k := range f.Kinds() {
		if k != expected[i] {
			t.Errorf("column %s: expected %s, got %s", f.Columns[i].Name, expected[i], k)
		}
	}

	if f.NumRows() != 3 {
		t.Fatalf("Expected 3 rows, got %d", f.NumRows())
	}
	if !f.Columns[3].Values[2].Null {
		t.Error("Missing boolean cell must be NULL")
	}
}

func TestFromRecordsExplicitKinds(t *testing.T) {
	header := []string{"id", "code"}
	records := [][]string{{"1", "007"}}

	f, err := FromRecords(header, records, []Kind{KindInteger, KindText})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	if f.Columns[1].Values[0].Text != "007" {
		t.Errorf("Expected text 007, got %+v", f.Columns[1].Values[0])
	}

	_, err = FromRecords(header, [][]string{{"x", "y"}}, []Kind{KindInteger, KindText})
	var ce *ConversionError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected ConversionError, got %v", err)
	}
	if ce.Column != "id" {
		t.Errorf("Expected column id in error, got %q", ce.Column)
	}
}

func TestFromRecordsTooWide(t *testing.T) {
	_, err := FromRecords([]string{"a"}, [][]string{{"1", "2"}}, nil)
	if !errors.Is(err, ErrRowWidth) {
		t.Errorf("Expected ErrRowWidth, got %v", err)
	}
}

func TestFromRecordsPartialKinds(t *testing.T) {
	header := []string{"code", "points"}
	records := [][]string{{"007", "1"}, {"010", "2"}}

	// code задан явно, points выводится
	f, err := FromRecords(header, records, []Kind{KindText, ""})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	if f.Columns[0].Kind != KindText || f.Columns[1].Kind != KindInteger {
		t.Errorf("Unexpected kinds: %v", f.Kinds())
	}

	if _, err := FromRecords(header, records, []Kind{KindText}); !errors.Is(err, ErrRowWidth) {
		t.Errorf("Expected ErrRowWidth for short kinds, got %v", err)
	}
}
