package checklist

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_DefaultPasses(t *testing.T) {
	if err := validateDomains(defaultDomains); err != nil {
		t.Fatalf("built-in checklist validation failed: %v", err)
	}
}

func TestValidateDomains_RequiresDomains(t *testing.T) {
	err := validateDomains(nil)
	if err == nil {
		t.Fatal("expected error for empty checklist, got nil")
	}
	if !strings.Contains(err.Error(), "no domains") {
		t.Errorf("error should mention no domains, got: %v", err)
	}
}

func TestValidateDomains_DetectsEmptyDomain(t *testing.T) {
	domains := []Domain{
		{Name: "Motor Skills", Items: []string{"Grasps small objects"}},
		{Name: "Play", Items: nil},
	}
	err := validateDomains(domains)
	if err == nil {
		t.Fatal("expected error for domain without items, got nil")
	}
	if !errors.Is(err, ErrInvalidDomain) {
		t.Errorf("expected ErrInvalidDomain, got: %v", err)
	}
	if !strings.Contains(err.Error(), `"Play"`) {
		t.Errorf("error should name the empty domain, got: %v", err)
	}
}

func TestValidateDomains_DetectsDuplicateName(t *testing.T) {
	domains := []Domain{
		{Name: "Motor Skills", Items: []string{"a"}},
		{Name: "Motor Skills", Items: []string{"b"}},
	}
	err := validateDomains(domains)
	if err == nil {
		t.Fatal("expected error for duplicate domain, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
	if errors.Is(err, ErrInvalidDomain) {
		t.Error("duplicate names alone should not be ErrInvalidDomain")
	}
}

func TestValidateDomains_DetectsBlankNames(t *testing.T) {
	tests := []struct {
		name    string
		domains []Domain
		want    string
	}{
		{"empty domain name", []Domain{{Name: "", Items: []string{"a"}}}, "empty name"},
		{"padded domain name", []Domain{{Name: " Motor ", Items: []string{"a"}}}, "whitespace"},
		{"blank item label", []Domain{{Name: "Motor", Items: []string{"a", "  "}}}, "empty label"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDomains(tt.domains)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidateDomains_ReportsAllProblems(t *testing.T) {
	domains := []Domain{
		{Name: "", Items: []string{"a"}},
		{Name: "Empty", Items: []string{}},
	}
	err := validateDomains(domains)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "empty name") || !strings.Contains(msg, "no items") {
		t.Errorf("expected both problems reported, got: %v", err)
	}
}
