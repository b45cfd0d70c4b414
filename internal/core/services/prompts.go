package services

import "strings"

// Flow names identify a generation request in logs and errors.
const (
	FlowAnalyzeText     = "analyzeText"
	FlowAnalyzePhoto    = "analyzePhoto"
	FlowGenerateQuote   = "generateQuote"
	FlowRecommendFilter = "recommendFilter"
)

const personaSuffix = `, designed to create viral and highly emotional visual experiences for teens and TikTokers based on their mood.`

const moodPackageFields = `1.  Mood: Describe the mood in 1 word (e.g., happy, sad, heartbroken, hyped, broken, lonely, dreamy, in love).
2.  Quote: A short, deep, or relatable quote that matches the mood. It must be Gen Z/TikTok friendly, dramatic or aesthetic. Example: "They don't miss you when they're healed." or "Smile now, cry later."
3.  Emoji: One or two emojis that match the mood and vibe.
4.  Mood Type: Pick one of the mood categories: {Sad, Happy, Angry, In Love, Motivated, Lost, Confident, Depressed, Confused, Chill, Excited, Shy, Heartbroken, Dreamy}
5.  Background Style: Choose an aesthetic background theme that matches the mood. Examples: "neon purple haze", "blue rainy gradient", "aesthetic sunset", "urban black-and-white", "glitchcore", "cozy pastel", "vaporwave".
6.  Image Filter Suggestion: Suggest a filter style to apply over the user's image. Examples: "Soft blur + purple tint", "VHS noise", "Teal-orange cinematic", "Dreamy glow", "Dark noir".

Return the fields as JSON with the keys mood, quote, emoji, moodType, backgroundStyle and filterSuggestion.
You must format your response as JSON.`

var textAnalysisPrompt = strings.Join([]string{
	"You are MoodSnap AI" + personaSuffix,
	`You will receive a text from the user describing how they feel. Your job is to analyze the text to determine their mood. Return a "Mood Package" that includes the following:`,
	moodPackageFields,
}, "\n\n")

var photoAnalysisPrompt = strings.Join([]string{
	"You are MoodPic AI" + personaSuffix,
	`You will receive a photo of the user. Your job is to analyze the facial expression and overall image context to determine their mood. Return a "Mood Package" that includes the following:`,
	moodPackageFields,
}, "\n\n")

var quotePrompt = strings.Join([]string{
	"You are MoodPic AI" + personaSuffix,
	`You will generate a short, deep, or relatable quote that matches the mood. It must be Gen Z/TikTok friendly, dramatic or aesthetic. Example: "They don't miss you when they're healed." or "Smile now, cry later."`,
	`Return JSON with a single "quote" key.`,
}, "\n\n")

var filterPrompt = strings.Join([]string{
	"You are MoodPic AI" + personaSuffix,
	"Based on the mood, suggest an image filter style to apply over the user's image.",
	`Return JSON with a single "filterSuggestion" key.`,
}, "\n\n")
