package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/config"
	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/runlog"
)

type RunsCmd struct {
	Limit int `help:"Maximum runs to show, newest first." default:"10"`
}

func (r *RunsCmd) Run(ctx *Context) error {
	path, err := config.RunsPath()
	if err != nil {
		return err
	}

	records, err := runlog.Read(path)
	if err != nil {
		return fmt.Errorf("read run history: %w", err)
	}
	recent := runlog.Recent(records, r.Limit)

	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(recent)
	}

	if ctx.PlainText {
		for _, rec := range recent {
			line := []string{
				rec.StartedAt.Format(time.RFC3339),
				rec.Keywords,
				rec.Location,
				fmt.Sprintf("%d", rec.JobsKept),
				fmt.Sprintf("%d", rec.PagesFetched),
				string(rec.Status),
			}
			fmt.Fprintln(ctx.Out, strings.Join(line, "\t"))
		}
		return nil
	}

	if len(recent) == 0 {
		ctx.UI.Infof("No runs recorded yet.")
		return nil
	}

	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "started\tkeywords\tlocation\tjobs\tpages\tdupes\tstatus")
	for _, rec := range recent {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			rec.StartedAt.Format("2006-01-02 15:04:05"),
			rec.Keywords,
			rec.Location,
			rec.JobsKept,
			rec.PagesFetched,
			rec.Duplicates,
			rec.Status,
		)
	}
	return tw.Flush()
}
