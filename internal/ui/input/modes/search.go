package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"gamehub/internal/ui/input/types"
)

// SearchMode edits the name filter; every edit re-filters the list
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
