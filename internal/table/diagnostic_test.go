package table

import (
	"errors"
	"testing"
	"time"

	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/models"
)

func TestDiagnosticIsSingleRow(t *testing.T) {
	req := models.SearchRequest{Keywords: "tableau", Location: "us"}

	tests := []struct {
		name       string
		failure    Failure
		wantStatus string
	}{
		{"missing credential", MissingCredentialFailure(), StatusCredentialError},
		{"network failure", NetworkFailure(errors.New("dial timeout"), req, 2, true), StatusNetworkError},
		{"no results connected", NoResultsFailure(req, 1, true), StatusNoJobsFound},
		{"no results disconnected", NoResultsFailure(req, 0, false), StatusNoJobsFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := Diagnostic(tt.failure)
			if tbl.Empty() {
				t.Fatalf("diagnostic table is empty")
			}
			if len(tbl.Rows) != 1 {
				t.Fatalf("len(Rows) = %d, want 1", len(tbl.Rows))
			}
			if got := tbl.Cell(0, "status"); got != tt.wantStatus {
				t.Fatalf("status = %q, want %q", got, tt.wantStatus)
			}
			if got := tbl.Cell(0, "timestamp"); got == "" {
				t.Fatalf("timestamp missing")
			}
		})
	}
}

func TestDiagnosticCarriesSearchContext(t *testing.T) {
	req := models.SearchRequest{Keywords: "data analyst", Location: "uk"}
	tbl := Diagnostic(NoResultsFailure(req, 3, true))

	if got := tbl.Cell(0, "search_keywords"); got != "data analyst" {
		t.Fatalf("search_keywords = %q", got)
	}
	if got := tbl.Cell(0, "search_location"); got != "uk" {
		t.Fatalf("search_location = %q", got)
	}
	if got := tbl.Cell(0, "pages_fetched"); got != "3" {
		t.Fatalf("pages_fetched = %q", got)
	}
	if got := tbl.Cell(0, "api_connected"); got != "true" {
		t.Fatalf("api_connected = %q", got)
	}
}

func TestDiagnosticTimestampFormat(t *testing.T) {
	when := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	tbl := Diagnostic(Failure{Status: StatusNoJobsFound, When: when})
	if got := tbl.Cell(0, "timestamp"); got != "2025-03-14 09:26:53" {
		t.Fatalf("timestamp = %q", got)
	}
}
