package analyzer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/mwenda/pdf-catalog/internal/models"
)

var (
	trailingArrayComma  = regexp.MustCompile(`,\s*\]`)
	trailingObjectComma = regexp.MustCompile(`,\s*\}`)
)

// Normalize coerces an untrusted model completion into a complete
// AnalysisRecord. It never fails: fences are stripped, trailing commas
// repaired, and anything that still cannot be parsed yields the
// all-defaults fallback record.
func Normalize(raw string) models.AnalysisRecord {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimSpace(strings.TrimPrefix(text, "```json"))
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimSpace(strings.TrimPrefix(text, "```"))
	}
	if strings.HasSuffix(text, "```") {
		text = strings.TrimSpace(strings.TrimSuffix(text, "```"))
	}

	// Textual repair of the two trailing-comma shapes models commonly emit.
	// Not a tolerant parser: a quoted value that happens to contain ",]" or
	// ",}" gets mutated too. Known limitation.
	text = trailingArrayComma.ReplaceAllString(text, "]")
	text = trailingObjectComma.ReplaceAllString(text, "}")

	var fields map[string]any
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return models.FallbackRecord()
	}

	return models.AnalysisRecord{
		Title:    stringField(fields, "title", models.DefaultField),
		Source:   stringField(fields, "source", models.DefaultField),
		Category: stringField(fields, "category", models.DefaultField),
		Subtopic: stringField(fields, "subtopic", models.DefaultField),
		Author:   stringField(fields, "author", models.DefaultField),
		Tags:     tagList(fields["tags"]),
		Summary:  capWords(stringField(fields, "summary", models.DefaultSummary), models.MaxSummaryWords),
	}
}

// stringField reads a string value from the parsed object, falling back when
// the key is absent, of the wrong type, or blank.
func stringField(fields map[string]any, key, fallback string) string {
	if v, ok := fields[key].(string); ok {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return fallback
}

// tagList coerces the tags value into at most MaxTags strings. Anything that
// is not a JSON array counts as absent. Scalar elements are stringified;
// nested arrays and objects are dropped.
func tagList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}

	tags := make([]string, 0, len(items))
	for _, item := range items {
		switch t := item.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				tags = append(tags, s)
			}
		case float64, bool:
			tags = append(tags, fmt.Sprint(t))
		}
		if len(tags) == models.MaxTags {
			break
		}
	}

	return tags
}

func capWords(s string, limit int) string {
	words := strings.Fields(s)
	if len(words) <= limit {
		return s
	}
	return strings.Join(words[:limit], " ")
}
