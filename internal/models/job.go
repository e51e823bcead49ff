package models

// Job is one listing as returned by the upstream search API. Fields are kept
// as strings because the upstream mixes numeric and string payloads and the
// host analytics runtime wants text columns anyway.
type Job struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Snippet  string `json:"snippet,omitempty"`
	Salary   string `json:"salary,omitempty"`
	Type     string `json:"type,omitempty"`
	Source   string `json:"source,omitempty"`
	Link     string `json:"link,omitempty"`
	Updated  string `json:"updated,omitempty"`
}

// EnrichedJob is a Job with the derived city/state split applied and every
// missing optional field normalized to an explicit placeholder.
type EnrichedJob struct {
	Job
	City  string `json:"city"`
	State string `json:"state"`
}
