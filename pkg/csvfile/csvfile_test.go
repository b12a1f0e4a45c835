package csvfile

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ruslano69/rdshelp/pkg/core/frame"
)

func TestReadScores(t *testing.T) {
	input := "\ufeffname,points,passed\nalice,10,true\nbob,20,false\ncarol,30,true\n"

	f, err := Read(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if f.NumRows() != 3 {
		t.Fatalf("Expected 3 rows, got %d", f.NumRows())
	}
	expected := []frame.Kind{frame.KindText, frame.KindInteger, frame.KindBoolean}
	for j, k := range f.Kinds() {
		if k != expected[j] {
			t.Errorf("column %s: expected %s, got %s", f.Columns[j].Name, expected[j], k)
		}
	}
	if f.Columns[0].Name != "name" {
		t.Errorf("BOM must be stripped, got %q", f.Columns[0].Name)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 1, 8, 30, 0, 250000000, time.UTC)
	f := frame.NewBuilder().
		AddText("comment", "has, comma", `has "quotes"`).
		AddFloat("ratio", 0.1, 2).
		AddTimestamp("at", ts, ts.Add(time.Minute)).
		MustBuild()
	f.Columns[1].Values[1] = frame.Null(frame.KindFloat)

	var buf bytes.Buffer
	if err := Write(&buf, f, Options{Comma: ';'}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(&buf, Options{Comma: ';'})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !frame.MultisetEqual(f, got) {
		t.Errorf("Round trip mismatch: %v vs %v", f.Kinds(), got.Kinds())
	}
}

func TestReadExplicitKinds(t *testing.T) {
	input := "zip,n\n00501,1\n10001,2\n"

	f, err := Read(strings.NewReader(input), Options{Kinds: []frame.Kind{frame.KindText, ""}})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if f.Columns[0].Values[0].Text != "00501" {
		t.Errorf("Expected leading zeros kept, got %+v", f.Columns[0].Values[0])
	}
	if f.Columns[1].Kind != frame.KindInteger {
		t.Errorf("Expected inferred integer, got %s", f.Columns[1].Kind)
	}
}

func TestReadEmpty(t *testing.T) {
	if _, err := Read(strings.NewReader(""), Options{}); !errors.Is(err, ErrNoHeader) {
		t.Errorf("Expected ErrNoHeader, got %v", err)
	}
}
