package igdb

import (
	"fmt"
	"strings"
)

// GameFields are the fields requested for every game
var GameFields = []string{
	"name",
	"cover.url",
	"rating",
	"summary",
	"first_release_date",
	"platforms.name",
}

// Default paging of TopGamesQuery
const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// TopGamesQuery renders the query for the highest rated games that have
// a cover. Non-positive limits fall back to DefaultLimit and negative
// offsets to DefaultOffset.
func TopGamesQuery(limit, offset int) string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = DefaultOffset
	}
	return fmt.Sprintf("fields %s; sort rating desc; where cover != null; limit %d; offset %d;",
		strings.Join(GameFields, ","), limit, offset)
}
