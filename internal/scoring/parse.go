package scoring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/sprout/internal/checklist"
)

// Score bounds for a single skill item.
const (
	MinScore = 0
	MaxScore = checklist.MaxItemScore
)

var (
	ErrEmpty       = errors.New("no score entered")
	ErrNotInteger  = errors.New("score is not an integer")
	ErrOutOfRange  = fmt.Errorf("score must be between %d and %d", MinScore, MaxScore)
	ErrUnknownItem = errors.New("unknown checklist item")
)

// ParseError reports raw input that could not be turned into a score.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid score %q: %v", e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseScore converts raw selector or CLI input into a score in
// [MinScore, MaxScore]. Surrounding whitespace is ignored.
func ParseScore(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &ParseError{Raw: raw, Err: ErrEmpty}
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Raw: raw, Err: ErrNotInteger}
	}
	if v < MinScore || v > MaxScore {
		return 0, &ParseError{Raw: raw, Err: ErrOutOfRange}
	}
	return v, nil
}
