package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable("Name", "Hex", "Ratio")

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.Len() != 0 {
		t.Errorf("Expected empty table, got %d rows", table.Len())
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable("Name", "Hex")

	table.AddRow("primary", "#3361cc")
	table.AddRow("secondary")
	table.AddRow("neutral", "#64748b", "extra")

	if table.Len() != 3 {
		t.Fatalf("Expected 3 rows, got %d", table.Len())
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d: expected 2 columns, got %d", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty padded cell, got %q", table.rows[1][1])
	}
	if table.rows[2][1] != "#64748b" {
		t.Errorf("Expected truncated row to keep its cells, got %v", table.rows[2])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("Name", "Hex")
	table.AddRow("primary", "#3361cc")
	table.AddRow("secondary", "#7c3aed")

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Header, separator and two rows.
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d:\n%s", len(lines), out)
	}
	for _, want := range []string{"Name", "Hex", "primary", "#3361cc", "secondary", "#7c3aed"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered table missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(lines[1], "─") {
		t.Errorf("Expected header separator, got %q", lines[1])
	}
	if strings.Index(lines[2], "#3361cc") != strings.Index(lines[3], "#7c3aed") {
		t.Errorf("Expected aligned columns:\n%s", out)
	}
}

func TestTableRenderNoHeaders(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
}
