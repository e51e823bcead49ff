package runlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusCompleted  Status = "completed"
	StatusDiagnostic Status = "diagnostic"
	StatusFailed     Status = "failed"
)

// Record captures one collection run for the run history.
type Record struct {
	ID           string    `json:"id"`
	StartedAt    time.Time `json:"started_at"`
	CompletedAt  time.Time `json:"completed_at"`
	Keywords     string    `json:"keywords"`
	Location     string    `json:"location"`
	TargetJobs   int       `json:"target_jobs"`
	MaxPages     int       `json:"max_pages"`
	PagesFetched int       `json:"pages_fetched"`
	JobsKept     int       `json:"jobs_kept"`
	Duplicates   int       `json:"duplicates_removed"`
	Status       Status    `json:"status"`
	Error        string    `json:"error,omitempty"`
}

// NewRecord starts a record for a run beginning now.
func NewRecord(keywords, location string, target, maxPages int) Record {
	return Record{
		ID:         uuid.NewString(),
		StartedAt:  time.Now(),
		Keywords:   keywords,
		Location:   location,
		TargetJobs: target,
		MaxPages:   maxPages,
	}
}

// Read loads the run history. A missing or blank file is an empty history.
func Read(path string) ([]Record, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Record{}, nil
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return []Record{}, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil {
		return []Record{}, nil
	}
	return records, nil
}

// Append adds the record to the history file, creating it if needed.
func Append(path string, record Record) error {
	records, err := Read(path)
	if err != nil {
		return err
	}
	records = append(records, record)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Recent returns up to limit records, newest first.
func Recent(records []Record, limit int) []Record {
	out := make([]Record, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, records[i])
	}
	return out
}
