package exercise

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrInvalidExercise is wrapped by every descriptor validation failure.
var ErrInvalidExercise = errors.New("invalid exercise descriptor")

// Names and directory segments end up inside quoted TOML strings and file
// paths, so only a conservative character set is accepted.
var segmentPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Load reads a catalog file, choosing the decoder from its extension.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // catalog path comes from the --info flag
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json", ".jsonc":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (expected .toml, .yaml or .json)", ext)
	}
}

// ParseTOML parses an info.toml style catalog.
func ParseTOML(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog TOML: %w", err)
	}
	return validated(&c)
}

// ParseYAML parses a YAML catalog.
func ParseYAML(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	return validated(&c)
}

// ParseJSON parses a JSON catalog. Comments and trailing commas are allowed.
func ParseJSON(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(jsonc.ToJSON(data), &c); err != nil {
		return nil, fmt.Errorf("parsing catalog JSON: %w", err)
	}
	return validated(&c)
}

func validated(c *Catalog) (*Catalog, error) {
	if err := Validate(c.Exercises); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every descriptor and rejects duplicate names.
// An empty list is valid.
func Validate(infos []Info) error {
	seen := make(map[string]bool, len(infos))
	for i, e := range infos {
		if err := validateInfo(i, e); err != nil {
			return err
		}
		if seen[e.Name] {
			return fmt.Errorf("catalog: duplicate exercise name %q: %w", e.Name, ErrInvalidExercise)
		}
		seen[e.Name] = true
	}
	return nil
}

func validateInfo(i int, e Info) error {
	if e.Name == "" {
		return fmt.Errorf("catalog: exercises[%d].name is required: %w", i, ErrInvalidExercise)
	}
	if !segmentPattern.MatchString(e.Name) {
		return fmt.Errorf("catalog: exercises[%d].name %q must contain only letters, digits, '_' or '-': %w", i, e.Name, ErrInvalidExercise)
	}
	if !e.HasDir() {
		return nil
	}
	// Nested dirs ("a/b") are fine; every segment must stay inside exercises/.
	for _, seg := range strings.Split(e.Dir, "/") {
		if !segmentPattern.MatchString(seg) {
			return fmt.Errorf("catalog: exercises[%d] (%s).dir %q has invalid segment %q: %w", i, e.Name, e.Dir, seg, ErrInvalidExercise)
		}
	}
	return nil
}
