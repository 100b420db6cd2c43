package stats

import "strings"

// ModelFamilyOther is the fallback bucket for unrecognized model identifiers.
const ModelFamilyOther = "other"

// knownFamilies are matched in order against the lowercased model string.
// Order matters for identifiers like "gpt-4o" vs "chatgpt".
var knownFamilies = []string{
	"claude",
	"gpt",
	"gemini",
	"llama",
	"mistral",
	"deepseek",
	"qwen",
	"grok",
}

// ModelFamily maps a free-text model identifier to a known family or
// ModelFamilyOther.
func ModelFamily(model string) string {
	lowered := strings.ToLower(model)
	for _, family := range knownFamilies {
		if strings.Contains(lowered, family) {
			return family
		}
	}
	return ModelFamilyOther
}
