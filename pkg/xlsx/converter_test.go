package xlsx

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ruslano69/rdshelp/pkg/core/frame"
)

func TestWriteReadRoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 1, 8, 30, 15, 0, time.UTC)

	f := frame.NewBuilder().
		AddText("name", "alice", "bob", "carol").
		AddInteger("points", 10, -20, 9007199254740993).
		AddFloat("ratio", 0.5, 1.25, 3).
		AddBoolean("passed", true, false, true).
		AddTimestamp("at", ts, ts.Add(time.Hour), ts.Add(-24*time.Hour)).
		MustBuild()
	f.Columns[1].Values[1] = frame.Null(frame.KindInteger)

	var buf bytes.Buffer
	if err := Write(&buf, f, "scores"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(bytes.NewReader(buf.Bytes()), "scores")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if !frame.MultisetEqual(f, got) {
		t.Errorf("Round trip mismatch\nexpected kinds %v\n     got kinds %v", f.Kinds(), got.Kinds())
		for i := 0; i < got.NumRows(); i++ {
			t.Logf("row %d: %+v", i, got.Row(i))
		}
	}
}

func TestReadFirstSheetByDefault(t *testing.T) {
	f := frame.NewBuilder().AddInteger("id", 1, 2).MustBuild()

	var buf bytes.Buffer
	if err := Write(&buf, f, ""); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(&buf, "")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.NumRows() != 2 || got.Columns[0].Kind != frame.KindInteger {
		t.Errorf("Unexpected frame: %v rows, kinds %v", got.NumRows(), got.Kinds())
	}
}

func TestReadMissingSheet(t *testing.T) {
	f := frame.NewBuilder().AddInteger("id", 1).MustBuild()

	var buf bytes.Buffer
	if err := Write(&buf, f, "data"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := Read(&buf, "missing"); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestReadUntypedHeaderInfersKinds(t *testing.T) {
	book := excelize.NewFile()
	defer book.Close()

	rows := [][]any{
		{"Player Score!", "team", "joined"},
		{12, "red", "2024-01-02 10:00:00"},
		{7, "blue", "2024-01-03 11:30:00"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := book.SetSheetRow(DefaultSheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := book.Write(&buf); err != nil {
		t.Fatalf("Write workbook: %v", err)
	}

	got, err := Read(&buf, "")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	expected := []frame.Kind{frame.KindInteger, frame.KindText, frame.KindTimestamp}
	for j, k := range got.Kinds() {
		if k != expected[j] {
			t.Errorf("column %s: expected %s, got %s", got.Columns[j].Name, expected[j], k)
		}
	}
	if got.Columns[0].Name != "Player Score!" {
		t.Errorf("Names must be kept as is, got %q", got.Columns[0].Name)
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		header string
		name   string
		kind   frame.Kind
	}{
		{"points (INTEGER)", "points", frame.KindInteger},
		{"ratio (FLOAT)", "ratio", frame.KindFloat},
		{"at (timestamp)", "at", frame.KindTimestamp},
		{"plain", "plain", ""},
		{"price (usd)", "price (usd)", ""},
		{"(TEXT)", "(TEXT)", ""},
	}

	for _, tt := range tests {
		name, kind := ParseHeader(tt.header)
		if name != tt.name || kind != tt.kind {
			t.Errorf("ParseHeader(%q) = %q, %q; want %q, %q", tt.header, name, kind, tt.name, tt.kind)
		}
	}

	if h := FormatHeader("passed", frame.KindBoolean); h != "passed (BOOLEAN)" {
		t.Errorf("Unexpected header: %s", h)
	}
}
