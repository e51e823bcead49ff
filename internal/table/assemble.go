package table

import "github.com/JVijeh/tableau-table-ext-job-scraper/internal/models"

// ResultColumns is the fixed column order the host analytics runtime expects.
var ResultColumns = []string{
	"id",
	"title",
	"company",
	"location",
	"city",
	"state",
	"snippet",
	"salary",
	"type",
	"source",
	"link",
	"updated",
}

// Assemble builds the final result table from enriched records. Callers must
// substitute a diagnostic table when jobs is empty; the host runtime treats
// an empty table as a fatal integration error.
func Assemble(jobs []models.EnrichedJob) models.Table {
	rows := make([][]string, 0, len(jobs))
	for _, job := range jobs {
		rows = append(rows, []string{
			job.ID,
			job.Title,
			job.Company,
			job.Location,
			job.City,
			job.State,
			job.Snippet,
			job.Salary,
			job.Type,
			job.Source,
			job.Link,
			job.Updated,
		})
	}
	return models.Table{Columns: ResultColumns, Rows: rows}
}
