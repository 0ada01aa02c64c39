package catalog

import "gamehub/internal/domain"

// Recompute derives the page state for a filtered list of filteredCount
// records. The page pointer is not clamped: a page outside
// [1, TotalPages] yields an empty window.
func Recompute(filteredCount, pageSize, currentPage int) domain.PageState {
	if pageSize <= 0 {
		pageSize = domain.PageSize
	}

	totalPages := (filteredCount + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	state := domain.PageState{
		PageSize:        pageSize,
		Page:            currentPage,
		TotalPages:      totalPages,
		PreviousEnabled: currentPage > 1,
		NextEnabled:     currentPage < totalPages,
	}

	start := state.Offset()
	end := start + pageSize
	if end > filteredCount {
		end = filteredCount
	}
	if start < 0 || start >= filteredCount {
		start, end = 0, 0
	}
	state.Start, state.End = start, end

	return state
}

// Window returns the records of filtered covered by the page state
func Window(filtered []domain.Game, state domain.PageState) []domain.Game {
	if state.Start >= state.End || state.End > len(filtered) {
		return []domain.Game{}
	}
	return append([]domain.Game(nil), filtered[state.Start:state.End]...)
}

// Paginator tracks the current page pointer
type Paginator struct {
	pageSize int
	page     int
}

// NewPaginator creates a paginator on page 1
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = domain.PageSize
	}
	return &Paginator{pageSize: pageSize, page: 1}
}

// Page returns the current page pointer
func (p *Paginator) Page() int { return p.page }

// PageSize returns the page size
func (p *Paginator) PageSize() int { return p.pageSize }

// Reset moves back to page 1
func (p *Paginator) Reset() { p.page = 1 }

// Next advances one page. Callers gate on NextEnabled.
func (p *Paginator) Next() { p.page++ }

// Previous goes back one page. Callers gate on PreviousEnabled.
func (p *Paginator) Previous() { p.page-- }

// State computes the page state for filteredCount records
func (p *Paginator) State(filteredCount int) domain.PageState {
	return Recompute(filteredCount, p.pageSize, p.page)
}
