package table

import (
	"fmt"
	"strconv"
	"time"

	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/models"
)

// Failure statuses reported through the diagnostic table.
const (
	StatusCredentialError = "CREDENTIAL_ERROR"
	StatusNetworkError    = "NETWORK_ERROR"
	StatusNoJobsFound     = "NO_JOBS_FOUND"
)

var diagnosticColumns = []string{
	"status",
	"issue",
	"search_keywords",
	"search_location",
	"pages_fetched",
	"api_connected",
	"suggestion",
	"timestamp",
}

// Failure describes why a run produced no data. It renders as a single-row
// table so the failure reaches the end user through the same channel as
// successful data.
type Failure struct {
	Status       string
	Issue        string
	Keywords     string
	Location     string
	PagesFetched int
	Connected    bool
	Suggestion   string
	When         time.Time
}

// Diagnostic renders the failure as a single-row table.
func Diagnostic(f Failure) models.Table {
	when := f.When
	if when.IsZero() {
		when = time.Now()
	}
	row := []string{
		f.Status,
		f.Issue,
		orPlaceholder(f.Keywords),
		orPlaceholder(f.Location),
		strconv.Itoa(f.PagesFetched),
		strconv.FormatBool(f.Connected),
		f.Suggestion,
		when.Format("2006-01-02 15:04:05"),
	}
	return models.Table{Columns: diagnosticColumns, Rows: [][]string{row}}
}

func orPlaceholder(value string) string {
	if value == "" {
		return Placeholder
	}
	return value
}

// MissingCredentialFailure reports an absent API key.
func MissingCredentialFailure() Failure {
	return Failure{
		Status:     StatusCredentialError,
		Issue:      "Missing JOB_API_KEY environment variable",
		Suggestion: "Set JOB_API_KEY in the environment or a .env file before running",
	}
}

// NetworkFailure reports a failed page request. Partial accumulations are
// discarded rather than passed off as a complete result.
func NetworkFailure(err error, req models.SearchRequest, pagesFetched int, connected bool) Failure {
	issue := "Failed to reach the job search API"
	if err != nil {
		issue = fmt.Sprintf("Failed to reach the job search API: %v", err)
	}
	return Failure{
		Status:       StatusNetworkError,
		Issue:        issue,
		Keywords:     req.Keywords,
		Location:     req.Location,
		PagesFetched: pagesFetched,
		Connected:    connected,
		Suggestion:   "Check internet connection and API key validity",
	}
}

// NoResultsFailure reports an empty upstream result.
func NoResultsFailure(req models.SearchRequest, pagesFetched int, connected bool) Failure {
	issue := fmt.Sprintf("API connected but found 0 jobs for %q in %q", req.Keywords, req.Location)
	suggestion := "Try different search terms or location (us, uk, ca, au, ...)"
	if !connected {
		issue = "No response received from the job search API"
		suggestion = "Check internet connection and API key validity"
	}
	return Failure{
		Status:       StatusNoJobsFound,
		Issue:        issue,
		Keywords:     req.Keywords,
		Location:     req.Location,
		PagesFetched: pagesFetched,
		Connected:    connected,
		Suggestion:   suggestion,
	}
}
