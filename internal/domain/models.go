package domain

import "strings"

// Game represents one catalog entry returned by IGDB
type Game struct {
	ID               int64      `json:"id" yaml:"id"`
	Name             string     `json:"name" yaml:"name"`
	Rating           float64    `json:"rating" yaml:"rating"` // 0-100 scale
	Cover            *Cover     `json:"cover,omitempty" yaml:"cover,omitempty"`
	FirstReleaseDate int64      `json:"first_release_date" yaml:"first_release_date"` // seconds since epoch, 0 if unknown
	Platforms        []Platform `json:"platforms" yaml:"platforms"`
	Summary          string     `json:"summary" yaml:"summary"`
}

// Cover is the cover art reference of a game
type Cover struct {
	ID  int64  `json:"id" yaml:"id"`
	URL string `json:"url" yaml:"url"`
}

// Platform is a platform a game was released on
type Platform struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// FullURL returns the cover URL with a scheme.
// IGDB hands out protocol-relative URLs such as //images.igdb.com/...
func (c Cover) FullURL() string {
	if strings.HasPrefix(c.URL, "http") {
		return c.URL
	}
	return "https:" + c.URL
}

// CoverURL returns the normalized cover URL, or "" when the game has no cover
func (g Game) CoverURL() string {
	if g.Cover == nil {
		return ""
	}
	return g.Cover.FullURL()
}

// Stars converts the 0-100 rating to the 0-5 star scale
func (g Game) Stars() float64 {
	return g.Rating / 20
}

// PlatformNames returns the platform names in order
func (g Game) PlatformNames() []string {
	names := make([]string, 0, len(g.Platforms))
	for _, p := range g.Platforms {
		names = append(names, p.Name)
	}
	return names
}

// SameIdentity reports whether two records describe the same game
func (g Game) SameIdentity(other Game) bool {
	return g.ID == other.ID
}

// Equal reports whether two records are structurally identical
func (g Game) Equal(other Game) bool {
	if g.ID != other.ID ||
		g.Name != other.Name ||
		g.Rating != other.Rating ||
		g.FirstReleaseDate != other.FirstReleaseDate ||
		g.Summary != other.Summary {
		return false
	}
	if (g.Cover == nil) != (other.Cover == nil) {
		return false
	}
	if g.Cover != nil && *g.Cover != *other.Cover {
		return false
	}
	if len(g.Platforms) != len(other.Platforms) {
		return false
	}
	for i := range g.Platforms {
		if g.Platforms[i] != other.Platforms[i] {
			return false
		}
	}
	return true
}
