package jooble

import (
	"context"

	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/models"
)

// CollectResult is the outcome of one paginated collection. Jobs may contain
// repeats across pages; deduplication happens downstream.
type CollectResult struct {
	Jobs         []models.Job
	PagesFetched int
	// Connected reports whether at least one page request completed, which
	// separates "no results" from "could not reach the API" in diagnostics.
	Connected bool
}

// Collect pages through the search results starting at page 1, accumulating
// jobs until the target count is reached, the page limit is exhausted, or the
// upstream returns an empty page. No retries: the first failed page ends the
// run with the error.
func (c *Client) Collect(ctx context.Context, req models.SearchRequest) (CollectResult, error) {
	result := CollectResult{}

	for page := 1; page <= req.MaxPages; page++ {
		if page > 1 {
			if err := c.wait(ctx); err != nil {
				return result, err
			}
		}

		jobs, err := c.SearchPage(ctx, req, page)
		if err != nil {
			c.logger.Debug().Int("page", page).Err(err).Msg("page fetch failed")
			return result, err
		}

		result.Connected = true
		result.PagesFetched = page

		if len(jobs) == 0 {
			c.logger.Debug().Int("page", page).Msg("empty page, stopping")
			break
		}

		result.Jobs = append(result.Jobs, jobs...)
		c.logger.Debug().
			Int("page", page).
			Int("page_jobs", len(jobs)).
			Int("total_jobs", len(result.Jobs)).
			Msg("page fetched")

		if len(result.Jobs) >= req.TargetCount {
			c.logger.Debug().Int("target", req.TargetCount).Msg("target reached, stopping")
			break
		}
	}

	return result, nil
}
