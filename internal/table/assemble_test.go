package table

import (
	"reflect"
	"testing"

	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/models"
)

func TestAssembleColumnOrder(t *testing.T) {
	want := []string{
		"id", "title", "company", "location", "city", "state",
		"snippet", "salary", "type", "source", "link", "updated",
	}
	tbl := Assemble(nil)
	if !reflect.DeepEqual(tbl.Columns, want) {
		t.Fatalf("Columns = %#v, want %#v", tbl.Columns, want)
	}
}

func TestAssembleRows(t *testing.T) {
	enriched := Enrich([]models.Job{
		{ID: "7", Title: "Analyst", Company: "Acme", Location: "Seattle, WA", Link: "https://example.com/7"},
	})

	tbl := Assemble(enriched)
	if len(tbl.Rows) != 1 {
		t.Fatalf("len(Rows) = %d, want 1", len(tbl.Rows))
	}
	if len(tbl.Rows[0]) != len(tbl.Columns) {
		t.Fatalf("row width %d != column count %d", len(tbl.Rows[0]), len(tbl.Columns))
	}
	if got := tbl.Cell(0, "id"); got != "7" {
		t.Fatalf("Cell(0, id) = %q, want 7", got)
	}
	if got := tbl.Cell(0, "city"); got != "Seattle" {
		t.Fatalf("Cell(0, city) = %q, want Seattle", got)
	}
	if got := tbl.Cell(0, "salary"); got != Placeholder {
		t.Fatalf("Cell(0, salary) = %q, want %q", got, Placeholder)
	}
}
