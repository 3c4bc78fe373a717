// Package cli formats screen dumps for the command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"mergelist/internal/screen"
	"mergelist/pkg/merge"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
	OutputFormatText  OutputFormat = "text"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML, OutputFormatText:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json, yaml or text)", s)
	}
}

// Block summarizes one registered provider, active or not.
type Block struct {
	Name      string `json:"name" yaml:"name"`
	ID        string `json:"id" yaml:"id"`
	Active    bool   `json:"active" yaml:"active"`
	Count     int    `json:"count" yaml:"count"`
	ViewTypes int    `json:"viewTypes" yaml:"viewTypes"`
}

// Dump is everything the adapter reports about a screen.
type Dump struct {
	Title     string       `json:"title,omitempty" yaml:"title,omitempty"`
	Blocks    []Block      `json:"blocks" yaml:"blocks"`
	Rows      []screen.Row `json:"rows" yaml:"rows"`
	ViewTypes int          `json:"viewTypes" yaml:"viewTypes"`
	Sections  []string     `json:"sections" yaml:"sections"`
}

// NewDump resolves every row of s at the given width.
func NewDump(s *screen.Screen, width int) Dump {
	states := s.Adapter.States()
	blocks := make([]Block, len(states))
	for i, st := range states {
		blocks[i] = Block{
			Name:      s.NameOf(st.Provider),
			ID:        st.ID.String(),
			Active:    st.Active,
			Count:     st.Count,
			ViewTypes: st.ViewTypeCount,
		}
	}
	return Dump{
		Title:     s.Title,
		Blocks:    blocks,
		Rows:      s.Rows(merge.Parent{Width: width, Height: 1}),
		ViewTypes: s.Adapter.ViewTypeCount(),
		Sections:  s.Adapter.Sections(),
	}
}

// PrinterOptions contains options for printing
type PrinterOptions struct {
	Format OutputFormat
	Color  bool
}

// Printer writes dumps in one output format.
type Printer struct {
	out     io.Writer
	options PrinterOptions
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, options PrinterOptions) *Printer {
	if options.Format == "" {
		options.Format = OutputFormatTable
	}
	return &Printer{out: out, options: options}
}

// Print writes d in the configured format.
func (p *Printer) Print(d Dump) error {
	switch p.options.Format {
	case OutputFormatJSON:
		return p.outputJSON(d)
	case OutputFormatYAML:
		return p.outputYAML(d)
	case OutputFormatText:
		return p.outputText(d)
	default:
		return p.outputTable(d)
	}
}

func (p *Printer) outputJSON(d Dump) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func (p *Printer) outputYAML(d Dump) error {
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// outputText prints the title and the row texts, one per line.
func (p *Printer) outputText(d Dump) error {
	if d.Title != "" {
		if _, err := fmt.Fprintln(p.out, d.Title); err != nil {
			return err
		}
	}
	for _, r := range d.Rows {
		if _, err := fmt.Fprintln(p.out, r.Text); err != nil {
			return err
		}
	}
	return nil
}

// outputTable renders the rows as a table with a summary footer.
func (p *Printer) outputTable(d Dump) error {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Footer = text.FormatDefault
	if d.Title != "" {
		t.SetTitle(d.Title)
	}

	columns := []string{"pos", "block", "local", "type", "id", "enabled", "text"}
	header := make(table.Row, len(columns))
	for i, col := range columns {
		header[i] = p.colorize(text.FgHiCyan, strings.ToUpper(col))
	}
	t.AppendHeader(header)

	for _, r := range d.Rows {
		t.AppendRow(table.Row{r.Position, r.Block, r.Local, r.ViewType, r.ID, p.formatEnabled(r.Enabled), r.Text})
	}

	t.AppendFooter(table.Row{
		fmt.Sprintf("%d rows", len(d.Rows)),
		fmt.Sprintf("%d view types", d.ViewTypes),
		"", "", "", "",
		p.formatSections(d.Sections),
	})
	t.Render()

	if len(d.Blocks) == 0 {
		return nil
	}
	return p.outputBlocks(d.Blocks)
}

// outputBlocks renders the provider roster, inactive blocks included.
func (p *Printer) outputBlocks(blocks []Block) error {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		p.colorize(text.FgHiCyan, "BLOCK"),
		p.colorize(text.FgHiCyan, "ACTIVE"),
		p.colorize(text.FgHiCyan, "ROWS"),
		p.colorize(text.FgHiCyan, "VIEW TYPES"),
		p.colorize(text.FgHiCyan, "ID"),
	})
	for _, b := range blocks {
		t.AppendRow(table.Row{b.Name, p.formatEnabled(b.Active), b.Count, b.ViewTypes, b.ID})
	}
	t.Render()
	return nil
}

func (p *Printer) formatEnabled(enabled bool) string {
	if enabled {
		return p.colorize(text.FgGreen, "yes")
	}
	return p.colorize(text.FgHiBlack, "no")
}

func (p *Printer) formatSections(sections []string) string {
	if len(sections) == 0 {
		return "no sections"
	}
	return "sections " + strings.Join(sections, " ")
}

func (p *Printer) colorize(c text.Color, s string) string {
	if !p.options.Color {
		return s
	}
	return c.Sprint(s)
}
