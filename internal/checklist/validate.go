package checklist

import (
	"fmt"
	"strings"
)

// validateDomains performs all structural checks on the given domains.
// Returns a combined error describing all problems found, or nil if valid.
// Empty domains are reported with ErrInvalidDomain so callers can match them.
func validateDomains(domains []Domain) error {
	if len(domains) == 0 {
		return fmt.Errorf("checklist validation failed: no domains defined")
	}

	var errs []string
	var emptyDomains []string
	seen := make(map[string]bool, len(domains))

	for i, d := range domains {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			errs = append(errs, fmt.Sprintf("domain %d has an empty name", i))
		} else if name != d.Name {
			errs = append(errs, fmt.Sprintf("domain %q has surrounding whitespace", d.Name))
		}

		if seen[d.Name] {
			errs = append(errs, fmt.Sprintf("duplicate domain name: %q", d.Name))
		}
		seen[d.Name] = true

		// A domain with no items would divide by zero when scored.
		if len(d.Items) == 0 {
			emptyDomains = append(emptyDomains, d.Name)
			continue
		}

		for j, item := range d.Items {
			if strings.TrimSpace(item) == "" {
				errs = append(errs, fmt.Sprintf("domain %q item %d has an empty label", d.Name, j))
			}
		}
	}

	if len(emptyDomains) > 0 {
		quoted := make([]string, len(emptyDomains))
		for i, n := range emptyDomains {
			quoted[i] = fmt.Sprintf("%q", n)
		}
		errs = append(errs, fmt.Sprintf("%v: no items in %s", ErrInvalidDomain, strings.Join(quoted, ", ")))
	}

	if len(errs) == 0 {
		return nil
	}

	msg := fmt.Sprintf("checklist validation failed:\n  %s", strings.Join(errs, "\n  "))
	if len(emptyDomains) > 0 {
		return &validationError{msg: msg, err: ErrInvalidDomain}
	}
	return &validationError{msg: msg}
}

// validationError carries the combined message and, when relevant, a
// sentinel for errors.Is.
type validationError struct {
	msg string
	err error
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Unwrap() error { return e.err }
