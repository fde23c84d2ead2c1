// Package report renders a scoring summary for non-interactive output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/sprout/internal/scoring"
)

// Document is the JSON shape of a rendered summary.
type Document struct {
	AssessmentID string                 `json:"assessment_id"`
	TotalScore   int                    `json:"total_score"`
	MaxScore     int                    `json:"max_score"`
	Percent      int                    `json:"percent"`
	Answered     int                    `json:"answered"`
	Domains      []scoring.DomainResult `json:"domains"`
}

// NewDocument builds the JSON view of a summary.
func NewDocument(assessmentID string, s scoring.Summary) Document {
	domains := s.Domains
	if domains == nil {
		domains = []scoring.DomainResult{}
	}
	return Document{
		AssessmentID: assessmentID,
		TotalScore:   s.TotalScore,
		MaxScore:     s.MaxScore,
		Percent:      s.Percent(),
		Answered:     s.Answered,
		Domains:      domains,
	}
}

// WriteJSON writes the summary as indented JSON.
func WriteJSON(w io.Writer, assessmentID string, s scoring.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(assessmentID, s)); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// WriteText writes the summary as an aligned plain-text table.
func WriteText(w io.Writer, s scoring.Summary) error {
	nameWidth := len("Domain")
	for _, d := range s.Domains {
		if len(d.Name) > nameWidth {
			nameWidth = len(d.Name)
		}
	}

	var b strings.Builder
	fmt.Fprintln(&b, "Assessment Summary")
	fmt.Fprintf(&b, "Total Score: %d / %d\n", s.TotalScore, s.MaxScore)
	fmt.Fprintf(&b, "Progress: %d%%\n", s.Percent())
	fmt.Fprintf(&b, "Answered: %d\n\n", s.Answered)

	fmt.Fprintf(&b, "%-*s  %7s  %7s\n", nameWidth, "Domain", "Points", "Percent")
	fmt.Fprintln(&b, strings.Repeat("─", nameWidth+18))
	for _, d := range s.Domains {
		fmt.Fprintf(&b, "%-*s  %7s  %6d%%\n",
			nameWidth, d.Name, fmt.Sprintf("%d/%d", d.Score, d.MaxScore()), d.Percent)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
