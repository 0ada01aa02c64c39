package catalog

import (
	"strconv"

	"github.com/pmezard/go-difflib/difflib"

	"gamehub/internal/domain"
)

// OpKind is the kind of a list edit
type OpKind int

const (
	OpInsert OpKind = iota
	OpRemove
	OpMove
	OpChange
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpMove:
		return "move"
	case OpChange:
		return "change"
	}
	return "unknown"
}

// Op is one edit turning the old list into the new one.
// From is the index in the old list (-1 for inserts), To the index in
// the new list (-1 for removals).
type Op struct {
	Kind OpKind
	From int
	To   int
	ID   int64
}

// Diff computes the edit script between two ordered lists keyed by game
// identity. Games kept in place whose content differs are reported as
// changes; games present in both lists but out of order are moves.
func Diff(old, new []domain.Game) []Op {
	a := identities(old)
	b := identities(new)

	oldIndex := make(map[int64]int, len(old))
	for i, g := range old {
		oldIndex[g.ID] = i
	}
	newIndex := make(map[int64]int, len(new))
	for i, g := range new {
		newIndex[g.ID] = i
	}

	var ops []Op
	matcher := difflib.NewMatcher(a, b)
	for _, oc := range matcher.GetOpCodes() {
		switch oc.Tag {
		case 'e':
			for k := 0; k < oc.I2-oc.I1; k++ {
				i, j := oc.I1+k, oc.J1+k
				if !old[i].Equal(new[j]) {
					ops = append(ops, Op{Kind: OpChange, From: i, To: j, ID: old[i].ID})
				}
			}
		default:
			// 'r' is a delete followed by an insert
			for i := oc.I1; i < oc.I2; i++ {
				id := old[i].ID
				if j, ok := newIndex[id]; ok {
					ops = append(ops, Op{Kind: OpMove, From: i, To: j, ID: id})
					continue
				}
				ops = append(ops, Op{Kind: OpRemove, From: i, To: -1, ID: id})
			}
			for j := oc.J1; j < oc.J2; j++ {
				id := new[j].ID
				if _, ok := oldIndex[id]; ok {
					// reported as a move on the old side
					continue
				}
				ops = append(ops, Op{Kind: OpInsert, From: -1, To: j, ID: id})
			}
		}
	}
	return ops
}

func identities(games []domain.Game) []string {
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = strconv.FormatInt(g.ID, 10)
	}
	return ids
}
