package scoring

// DomainResult is the aggregate for a single domain.
type DomainResult struct {
	Name    string `json:"name"`
	Items   int    `json:"items"`
	Score   int    `json:"score"`
	Percent int    `json:"percent"`
}

// MaxScore returns the highest score the domain can reach.
func (r DomainResult) MaxScore() int {
	return r.Items * MaxScore
}

// Summary is the derived view of a score map.
type Summary struct {
	TotalScore int            `json:"total_score"`
	MaxScore   int            `json:"max_score"`
	Answered   int            `json:"answered"`
	Domains    []DomainResult `json:"domains"`
}

// Percent returns the overall progress, rounded like the per-domain values.
func (s Summary) Percent() int {
	return roundPercent(s.TotalScore, s.MaxScore)
}

// Domain returns the result for the named domain.
func (s Summary) Domain(name string) (DomainResult, bool) {
	for _, d := range s.Domains {
		if d.Name == name {
			return d, true
		}
	}
	return DomainResult{}, false
}

// roundPercent returns part/whole*100 rounded half-up, in integer arithmetic
// so .5 boundaries are exact. A zero whole yields 0. Inputs are never
// negative.
func roundPercent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return (200*part + whole) / (2 * whole)
}
