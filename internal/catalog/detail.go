package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gamehub/internal/domain"
)

// ReleaseDateLayout is the day/month/year display format of the detail view
const ReleaseDateLayout = "02/01/2006"

// secondsCutoff separates second and millisecond timestamps. 1e11 seconds
// is far beyond any plausible release date.
const secondsCutoff = 100_000_000_000

// Detail is what the list screen hands to the detail screen
type Detail struct {
	ID          int64    `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Summary     string   `json:"summary" yaml:"summary"`
	CoverURL    string   `json:"cover_url,omitempty" yaml:"cover_url,omitempty"`
	Rating      float64  `json:"rating" yaml:"rating"` // raw 0-100 scale
	Platforms   []string `json:"platforms" yaml:"platforms"`
	ReleaseDate string   `json:"release_date" yaml:"release_date"` // epoch timestamp as text
}

// NewDetail builds the detail hand-off for a game
func NewDetail(g domain.Game) Detail {
	return Detail{
		ID:          g.ID,
		Name:        g.Name,
		Summary:     g.Summary,
		CoverURL:    g.CoverURL(),
		Rating:      g.Rating,
		Platforms:   g.PlatformNames(),
		ReleaseDate: strconv.FormatInt(g.FirstReleaseDate, 10),
	}
}

// Stars returns the rating on the 0-5 scale
func (d Detail) Stars() float64 {
	return d.Rating / 20
}

// RatingText formats the star rating with one decimal
func (d Detail) RatingText() string {
	return fmt.Sprintf("%.1f", d.Stars())
}

// PlatformsText joins the platform names
func (d Detail) PlatformsText() string {
	return strings.Join(d.Platforms, ", ")
}

// FormattedReleaseDate renders the release date as dd/mm/yyyy in local time
func (d Detail) FormattedReleaseDate() string {
	return FormatReleaseDate(d.ReleaseDate, time.Local)
}

// FormatReleaseDate renders an epoch timestamp given as text. Second
// timestamps are scaled to milliseconds first; unparsable text is
// treated as zero.
func FormatReleaseDate(raw string, loc *time.Location) string {
	ts, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		ts = 0
	}
	if ts > -secondsCutoff && ts < secondsCutoff {
		ts *= 1000
	}
	return time.UnixMilli(ts).In(loc).Format(ReleaseDateLayout)
}

// StarBar renders a five-character star bar for a 0-5 rating
func StarBar(stars float64) string {
	full := int(stars + 0.5)
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}
