package domain

// MoodType is one of the fixed mood categories a mood package can carry.
type MoodType string

const (
	MoodSad         MoodType = "Sad"
	MoodHappy       MoodType = "Happy"
	MoodAngry       MoodType = "Angry"
	MoodInLove      MoodType = "In Love"
	MoodMotivated   MoodType = "Motivated"
	MoodLost        MoodType = "Lost"
	MoodConfident   MoodType = "Confident"
	MoodDepressed   MoodType = "Depressed"
	MoodConfused    MoodType = "Confused"
	MoodChill       MoodType = "Chill"
	MoodExcited     MoodType = "Excited"
	MoodShy         MoodType = "Shy"
	MoodHeartbroken MoodType = "Heartbroken"
	MoodDreamy      MoodType = "Dreamy"
)

var moodTypes = []MoodType{
	MoodSad,
	MoodHappy,
	MoodAngry,
	MoodInLove,
	MoodMotivated,
	MoodLost,
	MoodConfident,
	MoodDepressed,
	MoodConfused,
	MoodChill,
	MoodExcited,
	MoodShy,
	MoodHeartbroken,
	MoodDreamy,
}

// AllMoodTypes returns the closed set of categories in declaration order.
func AllMoodTypes() []MoodType {
	out := make([]MoodType, len(moodTypes))
	copy(out, moodTypes)
	return out
}

// MoodTypeNames returns the categories as plain strings, for schema enums.
func MoodTypeNames() []string {
	out := make([]string, len(moodTypes))
	for i, m := range moodTypes {
		out[i] = string(m)
	}
	return out
}

// ParseMoodType reports whether s names a category. Matching is exact.
func ParseMoodType(s string) (MoodType, bool) {
	for _, m := range moodTypes {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// MoodPackage is the validated result of one mood analysis.
// Values are only produced by ParseMoodPackage and are never mutated.
type MoodPackage struct {
	Mood             string   `json:"mood"`
	Quote            string   `json:"quote"`
	Emoji            string   `json:"emoji"`
	MoodType         MoodType `json:"moodType"`
	BackgroundStyle  string   `json:"backgroundStyle"`
	FilterSuggestion string   `json:"filterSuggestion"`
}

// QuoteResult is the output of the single-purpose quote flow.
type QuoteResult struct {
	Quote string `json:"quote"`
}

// FilterRecommendation is the output of the single-purpose filter flow.
type FilterRecommendation struct {
	FilterSuggestion string `json:"filterSuggestion"`
}
