// Package rows loads row records for the grid, auto-detecting the input
// format. Supported inputs:
//   - a JSON array of objects
//   - newline-delimited JSON (NDJSON): one object per line
//   - a YAML list of records, or multi-document YAML (--- separated)
//   - TOML with an array of tables ([[rows]])
//
// Every format decodes to the same shape: one map per row.
package rows

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Row is one decoded record.
type Row = map[string]any

// LoadFile reads and parses a row file.
func LoadFile(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	rows, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Parse decodes row records from raw input, detecting the format from the
// content itself.
func Parse(data []byte) ([]Row, error) {
	input := strings.TrimSpace(string(data))
	if input == "" {
		return nil, fmt.Errorf("empty input")
	}

	// Multi-document YAML is the most distinctive shape.
	if strings.Contains(input, "\n---") || strings.HasPrefix(input, "---") {
		return parseMultiDocYAML(input)
	}

	lines := strings.Split(input, "\n")
	if len(lines) > 1 && isLikelyNDJSON(lines) {
		return parseNDJSON(lines)
	}

	// TOML [section] headers look like JSON arrays, so check TOML before
	// falling through to JSON.
	if isLikelyTOML(input) {
		return parseTOML(input)
	}

	if strings.HasPrefix(input, "[") || strings.HasPrefix(input, "{") {
		return parseJSON(input)
	}

	return parseYAML(input)
}

// parseJSON accepts an array of objects or a single object.
func parseJSON(input string) ([]Row, error) {
	var data any
	if err := json.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return collect(data)
}

func parseYAML(input string) ([]Row, error) {
	var data any
	if err := yaml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return collect(data)
}

func parseMultiDocYAML(input string) ([]Row, error) {
	decoder := yaml.NewDecoder(strings.NewReader(input))
	var out []Row
	for {
		var doc any
		if err := decoder.Decode(&doc); err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("invalid multi-document YAML: %w", err)
		}
		if doc == nil {
			continue
		}
		rows, err := collect(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no records found")
	}
	return out, nil
}

func parseNDJSON(lines []string) ([]Row, error) {
	out := make([]Row, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var rec Row
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("invalid NDJSON on line %d: %w", i+1, err)
		}
		out = append(out, rec)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no records found")
	}
	return out, nil
}

// parseTOML reads the first array of tables in the document as the row list:
//
//	[[rows]]
//	name = "alice"
func parseTOML(input string) ([]Row, error) {
	var doc map[string]any
	if err := toml.Unmarshal([]byte(input), &doc); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	for _, v := range doc {
		if list, ok := v.([]map[string]any); ok {
			out := make([]Row, len(list))
			for i, rec := range list {
				out[i] = rec
			}
			return out, nil
		}
		if list, ok := v.([]any); ok {
			return collect(list)
		}
	}
	return nil, fmt.Errorf("TOML input has no array of tables")
}

// collect normalizes a decoded document into a row list: a list yields one
// row per record, a single object yields one row.
func collect(data any) ([]Row, error) {
	switch v := data.(type) {
	case []any:
		out := make([]Row, 0, len(v))
		for i, item := range v {
			rec, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("record %d is not an object (got %T)", i, item)
			}
			out = append(out, rec)
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("no records found")
		}
		return out, nil
	case map[string]any:
		return []Row{v}, nil
	default:
		return nil, fmt.Errorf("input is not a record list (got %T)", data)
	}
}

// isLikelyNDJSON requires a majority of non-empty lines to start like a JSON
// object, so YAML list items are not misclassified.
func isLikelyNDJSON(lines []string) bool {
	jsonCount := 0
	nonEmpty := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmpty++
		if strings.HasPrefix(trimmed, "{") {
			jsonCount++
		}
	}
	return nonEmpty > 1 && jsonCount > nonEmpty/2
}

// TOML section headers ([name], [[name]], dotted and quoted keys) and
// key = value lines, as opposed to YAML's key: value.
var (
	tomlSectionPattern  = regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)
	tomlKeyValuePattern = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)
)

func isLikelyTOML(input string) bool {
	sectionCount := 0
	keyValueCount := 0
	nonEmpty := 0

	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmpty++
		if tomlSectionPattern.MatchString(line) {
			sectionCount++
		}
		if tomlKeyValuePattern.MatchString(line) {
			keyValueCount++
		}
	}

	if sectionCount > 0 {
		return true
	}
	return nonEmpty > 0 && keyValueCount > nonEmpty/2
}
