package domain

import "fmt"

// PageSize is the number of games shown per page
const PageSize = 10

// PageState is the pagination view of the filtered catalog.
// Page may leave [1, TotalPages] when next/previous are invoked
// without checking the enabled flags.
type PageState struct {
	PageSize        int
	Page            int
	TotalPages      int
	PreviousEnabled bool
	NextEnabled     bool
	Start           int // window start index into the filtered list
	End             int // window end index (exclusive); Start == End for an empty window
}

// Label renders the "current/total" page label
func (p PageState) Label() string {
	return fmt.Sprintf("%d/%d", p.Page, p.TotalPages)
}

// Offset returns the index of the first record of the page.
// Formula: (Page - 1) * PageSize.
func (p PageState) Offset() int {
	return (p.Page - 1) * p.PageSize
}
