package domain

// SchemaField is one required string property of a structured response.
type SchemaField struct {
	Name        string
	Description string
	Enum        []string
}

// Schema describes the flat JSON object a flow expects back from the model.
// Every field is a required string.
type Schema struct {
	Name   string
	Fields []SchemaField
}

// FieldNames returns the property names in declaration order.
func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// JSONSchema renders the schema as a strict JSON Schema object.
func (s Schema) JSONSchema() map[string]any {
	props := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		prop := map[string]any{
			"type":        "string",
			"description": f.Description,
		}
		if len(f.Enum) > 0 {
			prop["enum"] = append([]string(nil), f.Enum...)
		}
		props[f.Name] = prop
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             s.FieldNames(),
		"additionalProperties": false,
	}
}

// Prompt is one provider-agnostic generation request.
type Prompt struct {
	Flow         string
	System       string
	Text         string
	ImageDataURI string
	Schema       Schema
}

// HasImage reports whether the prompt carries an image reference.
func (p Prompt) HasImage() bool {
	return p.ImageDataURI != ""
}

// MoodPackageSchema is the output contract shared by the text and photo flows.
var MoodPackageSchema = Schema{
	Name: "mood_package",
	Fields: []SchemaField{
		{Name: "mood", Description: "The mood in 1 word (e.g., happy, sad, heartbroken)."},
		{Name: "quote", Description: "A short, deep, or relatable quote that matches the mood."},
		{Name: "emoji", Description: "One or two emojis that match the mood and vibe."},
		{Name: "moodType", Description: "One of the mood categories.", Enum: MoodTypeNames()},
		{Name: "backgroundStyle", Description: "An aesthetic background theme that matches the mood."},
		{Name: "filterSuggestion", Description: "A filter style to apply over the user's image."},
	},
}

var QuoteSchema = Schema{
	Name: "mood_quote",
	Fields: []SchemaField{
		{Name: "quote", Description: "A short, relatable quote based on the mood."},
	},
}

var FilterSchema = Schema{
	Name: "filter_recommendation",
	Fields: []SchemaField{
		{Name: "filterSuggestion", Description: "A suggestion for an image filter style that complements the mood (e.g., Soft blur + purple tint, VHS noise, Teal-orange cinematic, Dreamy glow, Dark noir)."},
	},
}
