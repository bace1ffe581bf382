package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	csvsource "github.com/ajitpratap0/slugger/pkg/connector/sources/csv"
	"github.com/ajitpratap0/slugger/pkg/engine"
	"github.com/ajitpratap0/slugger/pkg/errors"
	"github.com/ajitpratap0/slugger/pkg/models"
)

const rule = "--------------------------"

// Console renders results as the plain-text report.
type Console struct {
	w io.Writer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Loaded implements Renderer.
func (c *Console) Loaded(source string, stats csvsource.LoadStats) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Successfully loaded %d players from %s\n", stats.Loaded, source)
	if skipped := stats.Filtered + stats.Malformed; skipped > 0 {
		fmt.Fprintf(&b, "(%d of %d rows skipped: %d incomplete, %d malformed)\n",
			skipped, stats.RowsRead, stats.Filtered, stats.Malformed)
	}
	return c.flush(&b)
}

// Players implements Renderer.
func (c *Console) Players(records []*models.Record) error {
	var b bytes.Buffer
	if len(records) == 0 {
		b.WriteString("No players loaded yet. Please load data first.\n")
		return c.flush(&b)
	}

	b.WriteString("\n--- Player Statistics ---\n")
	for _, r := range records {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	b.WriteString(rule + "\n\n")
	return c.flush(&b)
}

// Sorted implements Renderer.
func (c *Console) Sorted(order engine.Ordering) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Sorting players by '%s' (%s)...\n", order.Key, direction(order.Descending))
	b.WriteString("Sorting Complete!\n\n")
	return c.flush(&b)
}

// Search implements Renderer.
func (c *Console) Search(id string, result engine.SearchResult) error {
	var b bytes.Buffer
	if result.Resorted {
		b.WriteString("\nSorting players alphabetically for search...\n")
		b.WriteString("Players sorted alphabetically.\n\n")
	}
	if !result.Found {
		fmt.Fprintf(&b, "Player '%s' not found after %d steps.\n", id, result.Steps)
		return c.flush(&b)
	}
	fmt.Fprintf(&b, "Player '%s' found in %d steps!\n", id, result.Steps)
	b.WriteString(result.Record.String())
	b.WriteByte('\n')
	return c.flush(&b)
}

// Ranking implements Renderer.
func (c *Console) Ranking(k int, key models.Field, records []*models.Record, available int) error {
	var b bytes.Buffer
	if available == 0 {
		b.WriteString("No players available. Please load data first.\n")
		return c.flush(&b)
	}

	fmt.Fprintf(&b, "\nTop %d players by '%s':\n\n", k, strings.ToUpper(key.String()))
	for i, r := range records {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	b.WriteString(rule + "\n\n")
	return c.flush(&b)
}

// TeamAverages implements Renderer.
func (c *Console) TeamAverages(groups engine.GroupAverages) error {
	var b bytes.Buffer
	if len(groups) == 0 {
		b.WriteString("No players loaded. Please load data first.\n")
		return c.flush(&b)
	}

	b.WriteString("\nTeam Average Batting Averages:\n\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "%s: %.3f\n", g.Team, g.Average)
	}
	b.WriteString(rule + "\n\n")
	return c.flush(&b)
}

// Fields implements Renderer.
func (c *Console) Fields(fields []models.Field) error {
	var b bytes.Buffer
	for _, f := range fields {
		kind := "text"
		if f.Numeric() {
			kind = "numeric"
		}
		fmt.Fprintf(&b, "%-4s %s\n", f, kind)
	}
	return c.flush(&b)
}

// Section implements Renderer.
func (c *Console) Section(title string) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "\n--- %s ---\n", title)
	return c.flush(&b)
}

func (c *Console) flush(b *bytes.Buffer) error {
	if _, err := c.w.Write(b.Bytes()); err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "failed to write output")
	}
	return nil
}
