package table

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/models"
)

// Enrich derives city/state for each job, strips the upstream's HTML
// highlight markup from snippets, and normalizes every missing optional
// field to the placeholder.
func Enrich(jobs []models.Job) []models.EnrichedJob {
	out := make([]models.EnrichedJob, 0, len(jobs))
	for _, job := range jobs {
		job.Snippet = cleanSnippet(job.Snippet)

		city, state := SplitLocation(job.Location)
		enriched := models.EnrichedJob{Job: job, City: city, State: state}

		fillMissing(&enriched.ID)
		fillMissing(&enriched.Title)
		fillMissing(&enriched.Company)
		fillMissing(&enriched.Location)
		fillMissing(&enriched.Snippet)
		fillMissing(&enriched.Salary)
		fillMissing(&enriched.Type)
		fillMissing(&enriched.Source)
		fillMissing(&enriched.Link)
		fillMissing(&enriched.Updated)

		out = append(out, enriched)
	}
	return out
}

func fillMissing(value *string) {
	if strings.TrimSpace(*value) == "" {
		*value = Placeholder
	}
}

// cleanSnippet flattens snippet HTML (Jooble wraps matched keywords in
// highlight tags) into single-spaced plain text.
func cleanSnippet(snippet string) string {
	snippet = strings.TrimSpace(snippet)
	if snippet == "" {
		return ""
	}

	if strings.ContainsRune(snippet, '<') {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(snippet))
		if err == nil {
			snippet = doc.Text()
		}
	}

	snippet = html.UnescapeString(snippet)
	return strings.Join(strings.Fields(snippet), " ")
}
