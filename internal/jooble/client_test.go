package jooble

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	fhttp "github.com/bogdanfinn/fhttp"

	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/models"
)

type stubCall struct {
	status int
	body   string
	err    error
}

type stubTransport struct {
	calls    []stubCall
	requests []*fhttp.Request
	bodies   []string
}

func (s *stubTransport) Do(req *fhttp.Request) (*fhttp.Response, error) {
	s.requests = append(s.requests, req)
	body := ""
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		body = string(data)
	}
	s.bodies = append(s.bodies, body)

	idx := len(s.requests) - 1
	if idx >= len(s.calls) {
		return nil, errors.New("unexpected request")
	}
	call := s.calls[idx]
	if call.err != nil {
		return nil, call.err
	}
	status := call.status
	if status == 0 {
		status = 200
	}
	return &fhttp.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(call.body)),
	}, nil
}

func newTestClient(transport *stubTransport) *Client {
	return NewClient("test-key", transport,
		WithBaseURL("https://jooble.test"),
		WithPageInterval(0),
	)
}

func pageBody(total int, ids ...int) string {
	jobs := make([]string, 0, len(ids))
	for _, id := range ids {
		jobs = append(jobs, fmt.Sprintf(
			`{"id": %d, "title": "Analyst %d", "company": "Acme", "location": "Seattle, WA", "salary": "", "snippet": "Work with <b>Tableau</b>"}`,
			id, id))
	}
	return fmt.Sprintf(`{"totalCount": %d, "jobs": [%s]}`, total, strings.Join(jobs, ","))
}

func TestSearchPageRequestShape(t *testing.T) {
	transport := &stubTransport{calls: []stubCall{{body: pageBody(1, 42)}}}
	client := newTestClient(transport)

	req := models.SearchRequest{Keywords: "tableau", Location: "us"}
	jobs, err := client.SearchPage(context.Background(), req, 3)
	if err != nil {
		t.Fatalf("SearchPage() error = %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("len(jobs) = %d, want 1", len(jobs))
	}

	sent := transport.requests[0]
	if sent.Method != fhttp.MethodPost {
		t.Fatalf("method = %s, want POST", sent.Method)
	}
	if got := sent.URL.String(); got != "https://jooble.test/api/test-key" {
		t.Fatalf("url = %s", got)
	}
	if got := sent.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("content-type = %q", got)
	}
	body := transport.bodies[0]
	for _, part := range []string{`"keywords":"tableau"`, `"location":"us"`, `"page":3`} {
		if !strings.Contains(body, part) {
			t.Fatalf("body %q missing %q", body, part)
		}
	}
}

func TestSearchPageDecodesMixedTypes(t *testing.T) {
	// Upstream sends numeric ids and sometimes numeric salaries.
	body := `{"totalCount": 2, "jobs": [
		{"id": 123456789, "title": "Analyst", "company": "Acme", "location": "Austin, TX", "salary": 95000},
		{"id": "abc-1", "title": "Engineer", "company": "Beta", "location": "Remote", "salary": "$80k"}
	]}`
	transport := &stubTransport{calls: []stubCall{{body: body}}}
	client := newTestClient(transport)

	jobs, err := client.SearchPage(context.Background(), models.SearchRequest{Keywords: "x"}, 1)
	if err != nil {
		t.Fatalf("SearchPage() error = %v", err)
	}
	if jobs[0].ID != "123456789" {
		t.Fatalf("jobs[0].ID = %q", jobs[0].ID)
	}
	if jobs[0].Salary != "95000" {
		t.Fatalf("jobs[0].Salary = %q", jobs[0].Salary)
	}
	if jobs[1].ID != "abc-1" || jobs[1].Salary != "$80k" {
		t.Fatalf("jobs[1] = %#v", jobs[1])
	}
}

func TestSearchPageHTTPError(t *testing.T) {
	transport := &stubTransport{calls: []stubCall{{status: 401, body: `{}`}}}
	client := newTestClient(transport)

	_, err := client.SearchPage(context.Background(), models.SearchRequest{}, 1)
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("err = %v, want ErrRequestFailed", err)
	}
}

func TestSearchPageNetworkError(t *testing.T) {
	transport := &stubTransport{calls: []stubCall{{err: errors.New("dial refused")}}}
	client := newTestClient(transport)

	_, err := client.SearchPage(context.Background(), models.SearchRequest{}, 1)
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("err = %v, want ErrRequestFailed", err)
	}
}

func TestSearchPageEmptyJobs(t *testing.T) {
	transport := &stubTransport{calls: []stubCall{{body: `{"totalCount": 0, "jobs": []}`}}}
	client := newTestClient(transport)

	jobs, err := client.SearchPage(context.Background(), models.SearchRequest{}, 1)
	if err != nil {
		t.Fatalf("SearchPage() error = %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("len(jobs) = %d, want 0", len(jobs))
	}
}
