package gamemap

import (
	"testing"

	"shadow-leap/internal/geom"
)

func TestContains(t *testing.T) {
	f := New(1024, 768, 48)
	if !f.Contains(geom.BoxAround(geom.Pos(512, 720), 48, 48)) {
		t.Fatal("spawn box should be inside the field")
	}
	if f.Contains(geom.BoxAround(geom.Pos(10, 720), 48, 48)) {
		t.Fatal("box hanging over the left edge should not be contained")
	}
}

func TestExitOf(t *testing.T) {
	f := New(1024, 768, 48)
	if got := f.ExitOf(geom.BoxAround(geom.Pos(1100, 300), 96, 48)); got != geom.ExitRight {
		t.Fatalf("expected ExitRight, got %v", got)
	}
	if got := f.ExitOf(geom.BoxAround(geom.Pos(1000, 300), 96, 48)); got != geom.ExitNone {
		t.Fatalf("partially visible box should not have exited, got %v", got)
	}
}

func TestCell(t *testing.T) {
	f := New(1024, 768, 48)
	cases := []struct {
		p        geom.Position
		col, row int
	}{
		{geom.Pos(0, 0), 0, 0},
		{geom.Pos(512, 720), 11, 15},
		{geom.Pos(23.9, 48), 0, 1},
		{geom.Pos(24, 48), 1, 1},
		{geom.Pos(-30, 48), -1, 1},
	}
	for _, tc := range cases {
		col, row := f.Cell(tc.p)
		if col != tc.col || row != tc.row {
			t.Errorf("Cell(%v) = (%d,%d), want (%d,%d)", tc.p, col, row, tc.col, tc.row)
		}
	}
}

func TestSpan(t *testing.T) {
	f := New(1024, 768, 48)
	if f.Span(192) != 4 || f.Span(10) != 1 || f.Span(96) != 2 {
		t.Fatalf("unexpected spans: %d %d %d", f.Span(192), f.Span(10), f.Span(96))
	}
	if f.Columns() != 22 || f.Rows() != 16 {
		t.Fatalf("unexpected grid %dx%d", f.Columns(), f.Rows())
	}
}
