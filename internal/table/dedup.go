package table

import "github.com/JVijeh/tableau-table-ext-job-scraper/internal/models"

// Dedupe returns jobs with each identifier kept exactly once, preserving
// first-occurrence order. Equality is the identifier alone; records without
// one pass through untouched.
func Dedupe(jobs []models.Job) []models.Job {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.ID == "" {
			out = append(out, job)
			continue
		}
		if _, ok := seen[job.ID]; ok {
			continue
		}
		seen[job.ID] = struct{}{}
		out = append(out, job)
	}
	return out
}
