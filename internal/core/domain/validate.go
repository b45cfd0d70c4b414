package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxEmojiRunes bounds the emoji field. ZWJ sequences make a single emoji
// several runes long, so this only rejects values that are clearly prose.
const maxEmojiRunes = 16

// ParseMoodPackage validates raw model output against MoodPackageSchema.
// Every field must be present, a non-empty string, and moodType must be one
// of the known categories. Nothing partial is ever returned.
func ParseMoodPackage(raw string) (MoodPackage, error) {
	fields, err := decodeStringFields(raw, MoodPackageSchema)
	if err != nil {
		return MoodPackage{}, err
	}

	moodType, ok := ParseMoodType(fields["moodType"])
	if !ok {
		return MoodPackage{}, fmt.Errorf("%w: moodType %q is not a known category", ErrSchemaViolation, fields["moodType"])
	}
	if n := utf8.RuneCountInString(fields["emoji"]); n > maxEmojiRunes {
		return MoodPackage{}, fmt.Errorf("%w: emoji has %d runes", ErrSchemaViolation, n)
	}

	return MoodPackage{
		Mood:             fields["mood"],
		Quote:            fields["quote"],
		Emoji:            fields["emoji"],
		MoodType:         moodType,
		BackgroundStyle:  fields["backgroundStyle"],
		FilterSuggestion: fields["filterSuggestion"],
	}, nil
}

// ParseQuoteResult validates raw model output against QuoteSchema.
func ParseQuoteResult(raw string) (QuoteResult, error) {
	fields, err := decodeStringFields(raw, QuoteSchema)
	if err != nil {
		return QuoteResult{}, err
	}
	return QuoteResult{Quote: fields["quote"]}, nil
}

// ParseFilterRecommendation validates raw model output against FilterSchema.
func ParseFilterRecommendation(raw string) (FilterRecommendation, error) {
	fields, err := decodeStringFields(raw, FilterSchema)
	if err != nil {
		return FilterRecommendation{}, err
	}
	return FilterRecommendation{FilterSuggestion: fields["filterSuggestion"]}, nil
}

func decodeStringFields(raw string, schema Schema) (map[string]string, error) {
	body := extractJSONObject(raw)
	if body == "" {
		return nil, ErrEmptyOutput
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrSchemaViolation)
	}

	out := make(map[string]string, len(schema.Fields))
	for _, f := range schema.Fields {
		val, ok := obj[f.Name]
		if !ok {
			return nil, fmt.Errorf("%w: missing field %q", ErrSchemaViolation, f.Name)
		}
		var s string
		if err := json.Unmarshal(val, &s); err != nil {
			return nil, fmt.Errorf("%w: field %q must be a string", ErrSchemaViolation, f.Name)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, fmt.Errorf("%w: field %q is empty", ErrSchemaViolation, f.Name)
		}
		out[f.Name] = s
	}
	return out, nil
}

// extractJSONObject strips markdown fences and surrounding prose that some
// models wrap around JSON even when asked not to.
func extractJSONObject(s string) string {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "```") {
		rest := strings.TrimPrefix(raw, "```")
		if i := strings.Index(rest, "\n"); i >= 0 {
			rest = rest[i+1:]
		}
		if j := strings.LastIndex(rest, "```"); j >= 0 {
			rest = rest[:j]
		}
		raw = strings.TrimSpace(rest)
	}
	if !strings.HasPrefix(raw, "{") {
		i := strings.Index(raw, "{")
		j := strings.LastIndex(raw, "}")
		if i >= 0 && j > i {
			return strings.TrimSpace(raw[i : j+1])
		}
	}
	return raw
}
