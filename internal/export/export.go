package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/muesli/termenv"

	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/models"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
	// MaxCellWidth truncates wide cells in terminal table output. Zero means
	// no truncation.
	MaxCellWidth int
}

// WriteTable renders the table in the requested format. CSV is what the host
// analytics runtime ingests; table is for humans on a TTY.
func WriteTable(w io.Writer, t models.Table, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, t)
	case FormatCSV:
		return writeCSV(w, t, ',')
	case FormatTSV:
		return writeCSV(w, t, '\t')
	case FormatMarkdown:
		return writeMarkdown(w, t)
	default:
		return writeTerminal(w, t, opts)
	}
}

func writeCSV(w io.Writer, t models.Table, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// writeJSON emits an array of row objects with keys in column order.
func writeJSON(w io.Writer, t models.Table) error {
	var b strings.Builder
	b.WriteString("[\n")
	for i, row := range t.Rows {
		b.WriteString("  {")
		for j, column := range t.Columns {
			if j > 0 {
				b.WriteString(", ")
			}
			key, err := json.Marshal(column)
			if err != nil {
				return err
			}
			value, err := json.Marshal(cell(row, j))
			if err != nil {
				return err
			}
			b.Write(key)
			b.WriteString(": ")
			b.Write(value)
		}
		b.WriteString("}")
		if i < len(t.Rows)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("]\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeMarkdown(w io.Writer, t models.Table) error {
	if t.Empty() {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}

	header := make([]string, len(t.Columns))
	rule := make([]string, len(t.Columns))
	for i, column := range t.Columns {
		header[i] = escapeMarkdown(column)
		rule[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(header, " | ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(rule, " | ")); err != nil {
		return err
	}
	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			cells[i] = escapeMarkdown(cell(row, i))
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | ")); err != nil {
			return err
		}
	}
	return nil
}

func writeTerminal(w io.Writer, t models.Table, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
	output := termenv.NewOutput(w)
	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			cells[i] = terminalCell(cell(row, i), output, opts)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func terminalCell(value string, output *termenv.Output, opts WriteOptions) string {
	const linkColor = "#87CEEB"

	value = strings.TrimSpace(value)
	if value == "" {
		return "-"
	}

	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		display := value
		if opts.Hyperlinks {
			display = shortURLLabel(value)
		}
		if opts.ColorEnabled {
			display = output.String(display).Foreground(output.Color(linkColor)).String()
		}
		if opts.Hyperlinks {
			display = hyperlink(value, display)
		}
		return display
	}

	if opts.MaxCellWidth > 3 && len(value) > opts.MaxCellWidth {
		value = strings.TrimSpace(value[:opts.MaxCellWidth-3]) + "..."
	}
	return value
}

func escapeMarkdown(value string) string {
	value = strings.ReplaceAll(value, "|", "\\|")
	return strings.Join(strings.Fields(value), " ")
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func hyperlink(target string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + target + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func shortURLLabel(raw string) string {
	const maxLen = 60
	label := strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil {
		host := strings.TrimPrefix(parsed.Host, "www.")
		if host != "" {
			label = host + parsed.Path
		}
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = raw
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}
	return label
}
