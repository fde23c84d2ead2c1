package scoring

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/sprout/internal/checklist"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for edits, resets and calculations.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// Engine holds the scores entered for one assessment and derives summaries
// from them. An Engine is not safe for concurrent use.
type Engine struct {
	catalog *checklist.Catalog
	scores  map[ItemKey]Entry
	summary *Summary
	id      string
	log     zerolog.Logger
}

// NewEngine creates an empty Engine for the given catalog.
func NewEngine(cat *checklist.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		scores:  make(map[ItemKey]Entry),
		id:      uuid.New().String(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the checklist the engine scores against.
func (e *Engine) Catalog() *checklist.Catalog {
	return e.catalog
}

// ID returns the current assessment ID. It changes on Reset.
func (e *Engine) ID() string {
	return e.id
}

// SetScore records raw input for an item, overwriting any earlier value.
//
// Empty input clears the item. Input that does not parse is still recorded
// as an invalid entry, which aggregates as zero, and the *ParseError is
// returned so the caller can decide whether to surface it.
func (e *Engine) SetScore(domain string, index int, raw string) error {
	if !e.catalog.HasItem(domain, index) {
		return fmt.Errorf("%w: %s #%d", ErrUnknownItem, domain, index)
	}
	key := ItemKey{Domain: domain, Index: index}

	v, err := ParseScore(raw)
	if err != nil {
		if errors.Is(err, ErrEmpty) {
			delete(e.scores, key)
			e.log.Debug().Str("assessment_id", e.id).Str("domain", domain).Int("item", index).Msg("score cleared")
			return nil
		}
		e.scores[key] = Entry{State: EntryInvalid, Raw: raw}
		e.log.Warn().Str("assessment_id", e.id).Str("domain", domain).Int("item", index).
			Str("raw", raw).Err(err).Msg("invalid score recorded as zero")
		return err
	}

	e.scores[key] = Entry{State: EntryScored, Value: v, Raw: raw}
	e.log.Debug().Str("assessment_id", e.id).Str("domain", domain).Int("item", index).Int("score", v).Msg("score set")
	return nil
}

// Set records an already-typed score.
func (e *Engine) Set(domain string, index, value int) error {
	if !e.catalog.HasItem(domain, index) {
		return fmt.Errorf("%w: %s #%d", ErrUnknownItem, domain, index)
	}
	if value < MinScore || value > MaxScore {
		return &ParseError{Raw: fmt.Sprint(value), Err: ErrOutOfRange}
	}
	e.scores[ItemKey{Domain: domain, Index: index}] = Entry{State: EntryScored, Value: value}
	e.log.Debug().Str("assessment_id", e.id).Str("domain", domain).Int("item", index).Int("score", value).Msg("score set")
	return nil
}

// Clear removes any entry for an item.
func (e *Engine) Clear(domain string, index int) {
	delete(e.scores, ItemKey{Domain: domain, Index: index})
	e.log.Debug().Str("assessment_id", e.id).Str("domain", domain).Int("item", index).Msg("score cleared")
}

// Entry returns what is recorded for an item.
func (e *Engine) Entry(domain string, index int) Entry {
	return e.scores[ItemKey{Domain: domain, Index: index}]
}

// Answered returns the number of items holding a valid score.
func (e *Engine) Answered() int {
	n := 0
	for _, entry := range e.scores {
		if entry.IsSet() {
			n++
		}
	}
	return n
}

// Reset clears every score and the displayed summary, and starts a new
// assessment ID.
func (e *Engine) Reset() {
	prev := e.id
	e.scores = make(map[ItemKey]Entry)
	e.summary = nil
	e.id = uuid.New().String()
	e.log.Info().Str("assessment_id", e.id).Str("previous_id", prev).Msg("assessment reset")
}

// ComputeSummary aggregates the score map in catalog order. It does not
// change engine state.
func (e *Engine) ComputeSummary() Summary {
	domains := e.catalog.Domains()
	sum := Summary{
		Domains: make([]DomainResult, 0, len(domains)),
	}

	for _, d := range domains {
		res := DomainResult{Name: d.Name, Items: d.Len()}
		for i := range d.Items {
			entry := e.scores[ItemKey{Domain: d.Name, Index: i}]
			res.Score += entry.Points()
			if entry.IsSet() {
				sum.Answered++
			}
		}
		res.Percent = roundPercent(res.Score, res.MaxScore())

		sum.TotalScore += res.Score
		sum.MaxScore += res.MaxScore()
		sum.Domains = append(sum.Domains, res)
	}

	return sum
}

// Calculate computes the summary and keeps it as the displayed result until
// the next Calculate or Reset.
func (e *Engine) Calculate() Summary {
	s := e.ComputeSummary()
	e.summary = &s
	e.log.Info().Str("assessment_id", e.id).Int("total", s.TotalScore).Int("max", s.MaxScore).
		Int("answered", s.Answered).Msg("summary calculated")
	return s
}

// Summary returns the displayed summary, if one has been calculated since the
// last reset.
func (e *Engine) Summary() (Summary, bool) {
	if e.summary == nil {
		return Summary{}, false
	}
	return *e.summary, true
}
