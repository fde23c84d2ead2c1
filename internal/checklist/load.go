package checklist

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SupportedMajor is the catalog file format major version this build reads.
const SupportedMajor = "v1"

// File is the on-disk catalog format.
type File struct {
	Version string   `json:"version"`
	Domains []Domain `json:"domains"`
}

// fileSchema describes a catalog file.
var fileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{"type": "string", "minLength": 1},
		"domains": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{"type": "string", "minLength": 1},
					"items": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string", "minLength": 1},
					},
				},
				"required":             []any{"name", "items"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "domains"},
	"additionalProperties": false,
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Load reads a catalog file from path.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read checklist %s: %w", path, err)
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("load checklist %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog file body.
func Parse(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidCatalog, err)
	}

	schema, err := catalogSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: schema validation failed: %v", ErrInvalidCatalog, err)
	}

	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}

	if !semver.IsValid(f.Version) {
		return nil, fmt.Errorf("%w: version %q is not a semantic version", ErrInvalidCatalog, f.Version)
	}
	if major := semver.Major(f.Version); major != SupportedMajor {
		return nil, fmt.Errorf("%w: unsupported version %s (want %s.x.x)", ErrInvalidCatalog, f.Version, SupportedMajor)
	}

	return New(f.Domains)
}

// catalogSchema compiles fileSchema on first use.
func catalogSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The compiler wants plain decoded JSON values, not Go ints.
		defBytes, err := json.Marshal(fileSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal checklist schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse checklist schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://checklist.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add checklist schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile checklist schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}
