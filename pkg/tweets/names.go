package tweets

import "strings"

// displayNames maps status-link usernames to proper display names.
// Companies get their product name; individuals stay as @handle so the
// reader knows it is a personal account.
var displayNames = map[string]string{
	// Companies & organizations
	"openai":          "OpenAI",
	"openaidevs":      "OpenAI",
	"anthropic":       "Anthropic",
	"googlelabs":      "Google Labs",
	"googleai":        "Google AI",
	"deepmind":        "DeepMind",
	"baidu_inc":       "Baidu",
	"huggingface":     "Hugging Face",
	"runwayml":        "Runway",
	"stabilityai":     "Stability AI",
	"midjourney":      "Midjourney",
	"replicate":       "Replicate",
	"together_ai":     "Together AI",
	"cohere":          "Cohere",
	"mistralai":       "Mistral AI",
	"perplexity_ai":   "Perplexity",
	"claudeai":        "Claude AI",
	"character_ai":    "Character.AI",
	"krea_ai":         "Krea AI",
	"wavespeed_ai":    "WaveSpeed AI",
	"higgsfield_ai":   "Higgsfield AI",
	"heydin_ai":       "HeyDin AI",
	"wildmindai":      "WildMind AI",
	"minimax__ai":     "MiniMax AI",
	"hailuo_ai":       "Hailuo AI",
	"extropic_ai":     "Extropic AI",
	"artificialanlys": "Artificial Analysis",
	"theworldlabs":    "The World Labs",
	"googleanalytics": "Google Analytics",
	"erniefordevs":    "Ernie for Developers",
	// Individuals
	"sama":         "@sama",
	"karpathy":     "@karpathy",
	"sundarpichai": "@sundarpichai",
	"elonmusk":     "@elonmusk",
	"raydalio":     "@raydalio",
	"emollick":     "@emollick",
	"drfeifei":     "@drfeifei",
}

// FormatUsername returns the display name for a username, or @username
// when the account is unknown.
func FormatUsername(username string) string {
	if name, ok := displayNames[strings.ToLower(username)]; ok {
		return name
	}
	return "@" + username
}
