package jooble

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/models"
)

// searchBody is the JSON body of one page request.
type searchBody struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
	Page     int    `json:"page"`
}

// searchResponse is the upstream envelope. totalCount is advisory; the pager
// only trusts the jobs array.
type searchResponse struct {
	TotalCount json.Number  `json:"totalCount"`
	Jobs       []jobPayload `json:"jobs"`
}

// jobPayload tolerates the upstream's mixed typing: id comes back as a
// number, salary is sometimes a number and sometimes a string.
type jobPayload struct {
	ID       flexString `json:"id"`
	Title    string     `json:"title"`
	Company  string     `json:"company"`
	Location string     `json:"location"`
	Snippet  string     `json:"snippet"`
	Salary   flexString `json:"salary"`
	Type     string     `json:"type"`
	Source   string     `json:"source"`
	Link     string     `json:"link"`
	Updated  string     `json:"updated"`
}

func (p jobPayload) toJob() models.Job {
	return models.Job{
		ID:       string(p.ID),
		Title:    strings.TrimSpace(p.Title),
		Company:  strings.TrimSpace(p.Company),
		Location: strings.TrimSpace(p.Location),
		Snippet:  p.Snippet,
		Salary:   strings.TrimSpace(string(p.Salary)),
		Type:     strings.TrimSpace(p.Type),
		Source:   strings.TrimSpace(p.Source),
		Link:     strings.TrimSpace(p.Link),
		Updated:  strings.TrimSpace(p.Updated),
	}
}

// flexString decodes a JSON string, number, or null into a string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}
