package scoring

import "strconv"

// ItemKey identifies a skill item by domain name and position.
type ItemKey struct {
	Domain string
	Index  int
}

// EntryState describes what is recorded for an item.
type EntryState int

const (
	EntryUnset   EntryState = iota // Nothing entered
	EntryScored                    // A valid score in [MinScore, MaxScore]
	EntryInvalid                   // Raw input that failed to parse
)

// Entry is one cell of the score map.
type Entry struct {
	State EntryState
	Value int
	Raw   string
}

// IsSet reports whether the entry holds a valid score.
func (e Entry) IsSet() bool {
	return e.State == EntryScored
}

// Points returns the value used for aggregation. Unset and invalid entries
// count as zero.
func (e Entry) Points() int {
	if e.State != EntryScored {
		return 0
	}
	return e.Value
}

// Label returns the text shown for the entry in a selector.
func (e Entry) Label() string {
	switch e.State {
	case EntryScored:
		return strconv.Itoa(e.Value)
	case EntryInvalid:
		return "?"
	default:
		return "—"
	}
}
