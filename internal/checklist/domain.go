package checklist

import "errors"

// MaxItemScore is the highest score a single skill item can receive.
const MaxItemScore = 4

var (
	// ErrInvalidDomain indicates a domain that cannot be scored, such as one
	// with no items.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrInvalidCatalog indicates a catalog file that failed schema or
	// version checks.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Domain is a named grouping of skill items, e.g. "Motor Skills".
type Domain struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Len returns the number of items in the domain.
func (d Domain) Len() int {
	return len(d.Items)
}

// MaxScore returns the highest score the domain can reach.
func (d Domain) MaxScore() int {
	return len(d.Items) * MaxItemScore
}

// clone returns a deep copy so callers can't mutate catalog state.
func (d Domain) clone() Domain {
	items := make([]string, len(d.Items))
	copy(items, d.Items)
	return Domain{Name: d.Name, Items: items}
}
