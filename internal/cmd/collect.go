package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/config"
	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/export"
	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/jooble"
	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/models"
	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/network"
	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/runlog"
	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/table"
)

type CollectCmd struct {
	Keywords  string        `arg:"" optional:"" help:"Search keywords (default from DEFAULT_SEARCH_KEYWORDS)."`
	Location  string        `help:"Search location (default from DEFAULT_SEARCH_LOCATION)."`
	Target    int           `help:"Stop once this many records are accumulated."`
	MaxPages  int           `name:"max-pages" help:"Maximum pages to fetch."`
	PageDelay time.Duration `name:"page-delay" help:"Pause between page requests." default:"1s"`
	BaseURL   string        `name:"base-url" help:"Override the API base URL." hidden:""`
	Format    string        `help:"Output format: csv, json, md, tsv, table." enum:",csv,json,md,tsv,table" default:""`
	Output    string        `name:"output" short:"o" help:"Write output to a file."`
	Proxies   string        `help:"Comma-separated proxy URLs." env:"JOB_PROXIES"`
	NoRunLog  bool          `name:"no-run-log" help:"Skip recording this run in the run history."`
}

// Run executes one collection: paginated fetch, dedup, enrich, assemble.
// Failures surface as a single-row diagnostic table on the normal output
// path, never as an empty table.
func (c *CollectCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	req := models.SearchRequest{
		Keywords:    firstNonEmpty(c.Keywords, cfg.Keywords),
		Location:    firstNonEmpty(c.Location, cfg.Location),
		TargetCount: defaultInt(c.Target, cfg.Target),
		MaxPages:    defaultInt(c.MaxPages, cfg.MaxPages),
	}

	record := runlog.NewRecord(req.Keywords, req.Location, req.TargetCount, req.MaxPages)

	var out models.Table
	if err := cfg.Validate(); err != nil {
		ctx.Logger.Warn().Err(err).Msg("credential validation failed")
		ctx.UI.Warnf("%v; emitting diagnostic table", err)
		out = table.Diagnostic(table.MissingCredentialFailure())
		record.Status = runlog.StatusDiagnostic
		record.Error = err.Error()
	} else {
		out = c.collect(ctx, cfg, req, &record)
	}

	record.CompletedAt = time.Now()
	if !c.NoRunLog {
		if err := appendRunRecord(record); err != nil {
			ctx.Logger.Warn().Err(err).Msg("failed to write run history")
		}
	}

	format, err := resolveFormat(ctx, c.Format, c.Output)
	if err != nil {
		return err
	}

	writer := ctx.Out
	if c.Output != "" {
		file, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled
	if err := export.WriteTable(writer, out, format, export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   colorEnabled && isTTY(writer),
		MaxCellWidth: 40,
	}); err != nil {
		return err
	}

	printCollectSummary(ctx, record)
	return nil
}

// collect runs the fetch-and-shape pipeline and always returns a non-empty
// table.
func (c *CollectCmd) collect(ctx *Context, cfg config.Config, req models.SearchRequest, record *runlog.Record) models.Table {
	client, err := c.buildClient(ctx, cfg)
	if err != nil {
		ctx.Logger.Error().Err(err).Msg("building API client failed")
		record.Status = runlog.StatusFailed
		record.Error = err.Error()
		return table.Diagnostic(table.NetworkFailure(err, req, 0, false))
	}

	ctx.Logger.Debug().
		Str("keywords", req.Keywords).
		Str("location", req.Location).
		Int("target", req.TargetCount).
		Int("max_pages", req.MaxPages).
		Str("api_key", cfg.MaskedKey()).
		Msg("starting collection")

	result, err := client.Collect(context.Background(), req)
	record.PagesFetched = result.PagesFetched
	if err != nil {
		ctx.Logger.Error().Err(err).Int("pages_fetched", result.PagesFetched).Msg("collection failed")
		record.Status = runlog.StatusFailed
		record.Error = err.Error()
		return table.Diagnostic(table.NetworkFailure(err, req, result.PagesFetched, result.Connected))
	}

	if len(result.Jobs) == 0 {
		record.Status = runlog.StatusDiagnostic
		return table.Diagnostic(table.NoResultsFailure(req, result.PagesFetched, result.Connected))
	}

	unique := table.Dedupe(result.Jobs)
	record.Duplicates = len(result.Jobs) - len(unique)
	record.JobsKept = len(unique)
	record.Status = runlog.StatusCompleted

	return table.Assemble(table.Enrich(unique))
}

func (c *CollectCmd) buildClient(ctx *Context, cfg config.Config) (*jooble.Client, error) {
	proxies, err := config.LoadProxies(c.Proxies)
	if err != nil {
		return nil, err
	}

	var rotator *network.Rotator
	if len(proxies) > 0 {
		rotator, err = network.NewRotator(proxies, 10*time.Minute)
		if err != nil {
			return nil, err
		}
	}

	transport, err := network.NewClient(rotator)
	if err != nil {
		return nil, err
	}

	return jooble.NewClient(cfg.APIKey, transport,
		jooble.WithBaseURL(firstNonEmpty(c.BaseURL, cfg.BaseURL)),
		jooble.WithPageInterval(c.PageDelay),
		jooble.WithLogger(ctx.Logger),
	), nil
}

func appendRunRecord(record runlog.Record) error {
	path, err := config.RunsPath()
	if err != nil {
		return err
	}
	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return runlog.Append(path, record)
}

func printCollectSummary(ctx *Context, record runlog.Record) {
	if ctx == nil || ctx.Err == nil {
		return
	}
	if record.Status == runlog.StatusCompleted {
		fmt.Fprintf(ctx.Err, "summary: jobs=%d pages=%d duplicates=%d\n",
			record.JobsKept, record.PagesFetched, record.Duplicates)
		return
	}
	fmt.Fprintf(ctx.Err, "summary: status=%s pages=%d\n", record.Status, record.PagesFetched)
}

func resolveFormat(ctx *Context, flagFormat string, outputPath string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if flagFormat != "" {
		return parseFormat(flagFormat)
	}
	if outputPath != "" {
		return export.FormatCSV, nil
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func parseFormat(value string) (export.Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return export.FormatCSV, nil
	case "json":
		return export.FormatJSON, nil
	case "md", "markdown":
		return export.FormatMarkdown, nil
	case "tsv":
		return export.FormatTSV, nil
	case "table", "":
		return export.FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func defaultInt(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}
