package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"gamehub/internal/catalog"
	"gamehub/internal/domain"
)

// Output formats
const (
	FormatTable = "table"
	FormatText  = "text"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// pageOutput is the structured form of one page of results
type pageOutput struct {
	Page       int              `json:"page" yaml:"page"`
	TotalPages int              `json:"total_pages" yaml:"total_pages"`
	Search     string           `json:"search,omitempty" yaml:"search,omitempty"`
	Games      []catalog.Detail `json:"games" yaml:"games"`
}

func newPageOutput(games []domain.Game, page domain.PageState, search string) pageOutput {
	out := pageOutput{
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Search:     search,
		Games:      make([]catalog.Detail, 0, len(games)),
	}
	for _, g := range games {
		out.Games = append(out.Games, catalog.NewDetail(g))
	}
	return out
}

// writePage prints one page of games in the given format
func writePage(w io.Writer, format string, games []domain.Game, page domain.PageState, search string) error {
	switch format {
	case FormatTable, "":
		return writeTable(w, games, page)
	case FormatYAML:
		return writeYAML(w, newPageOutput(games, page, search))
	case FormatJSON:
		return writeJSON(w, newPageOutput(games, page, search))
	}
	return fmt.Errorf("unknown format %q (use table, yaml or json)", format)
}

func writeTable(w io.Writer, games []domain.Game, page domain.PageState) error {
	if len(games) == 0 {
		_, err := fmt.Fprintf(w, "No games found.\nPage %s\n", page.Label())
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "ID", "NAME", "RATING", "RELEASED", "PLATFORMS")
	for i, g := range games {
		d := catalog.NewDetail(g)
		t.Row(
			strconv.Itoa(page.Start+i+1),
			strconv.FormatInt(d.ID, 10),
			d.Name,
			d.RatingText(),
			d.FormattedReleaseDate(),
			truncateCell(d.PlatformsText(), 40),
		)
	}

	_, err := fmt.Fprintf(w, "%s\nPage %s\n", t.String(), page.Label())
	return err
}

// writeDetail prints one game in the given format
func writeDetail(w io.Writer, format string, d catalog.Detail) error {
	switch format {
	case FormatText, "":
		_, err := io.WriteString(w, detailText(d))
		return err
	case FormatYAML:
		return writeYAML(w, d)
	case FormatJSON:
		return writeJSON(w, d)
	}
	return fmt.Errorf("unknown format %q (use text, yaml or json)", format)
}

func detailText(d catalog.Detail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", d.Name)
	fmt.Fprintf(&b, "Rating:    %s %s\n", catalog.StarBar(d.Stars()), d.RatingText())
	if date := d.FormattedReleaseDate(); date != "" {
		fmt.Fprintf(&b, "Released:  %s\n", date)
	}
	if platforms := d.PlatformsText(); platforms != "" {
		fmt.Fprintf(&b, "Platforms: %s\n", platforms)
	}
	if d.CoverURL != "" {
		fmt.Fprintf(&b, "Cover:     %s\n", d.CoverURL)
	}
	if d.Summary != "" {
		fmt.Fprintf(&b, "\n%s\n", d.Summary)
	}
	return b.String()
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func truncateCell(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
